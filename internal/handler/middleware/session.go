package middleware

import (
	"log/slog"
	"net/http"

	"retreat-api/internal/handler/httperr"
	"retreat-api/internal/pkg/config"
	"retreat-api/internal/pkg/cookie"
	"retreat-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxClientIDKey = "client_id"

// SessionMiddleware identifies the browser behind a request. A client without a
// valid session cookie is issued a fresh id; there is no login.
type SessionMiddleware struct {
	jwtService *jwt.Service
	cookieCfg  config.CookieConfig
}

func NewSessionMiddleware(jwtService *jwt.Service, cookieCfg config.CookieConfig) *SessionMiddleware {
	return &SessionMiddleware{
		jwtService: jwtService,
		cookieCfg:  cookieCfg,
	}
}

func (m *SessionMiddleware) EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := cookie.GetSessionToken(c); token != "" {
			clientID, err := m.jwtService.ValidateToken(token)
			if err == nil {
				c.Set(ctxClientIDKey, clientID)
				c.Next()
				return
			}
			slog.Debug("session token rejected, issuing a new one", "error", err.Error())
		}

		clientID := uuid.New()
		token, err := m.jwtService.GenerateToken(clientID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		cookie.SetSessionCookie(c, m.cookieCfg, token, m.jwtService.TokenDuration())

		c.Set(ctxClientIDKey, clientID)
		c.Next()
	}
}

func GetClientID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxClientIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}
