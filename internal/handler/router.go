package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"retreat-api/internal/handler/api"
	resdto "retreat-api/internal/handler/dto/response"
	"retreat-api/internal/handler/middleware"
	"retreat-api/internal/pkg/config"
	"retreat-api/internal/pkg/errs"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Inquiry *api.InquiryHandler
	Form    *api.FormHandler
	Content *api.ContentHandler
}

type Middlewares struct {
	Logger        *middleware.Logger
	CORS          gin.HandlerFunc
	Session       *middleware.SessionMiddleware
	Throttle      *middleware.IPThrottle
	StartThrottle *middleware.IPThrottle
}

// NewEngine builds the gin engine. X-Forwarded-For is only honoured from the configured proxies.
func NewEngine(cfg config.Config) (*gin.Engine, error) {
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, errs.Wrap(err, "invalid TRUSTED_PROXIES")
	}
	return engine, nil
}

func NewRouter(engine *gin.Engine, h Handlers, mw Middlewares) {
	setupMiddleware(engine, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(mw.CORS)
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		content := apiGroup.Group("/content")
		addRoutes(content, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Content.GetSite},
			{Method: http.MethodGet, Path: "/:section", Handler: h.Content.GetSection},
		})

		sessioned := apiGroup.Group("")
		sessioned.Use(mw.Session.EnsureSession())
		{
			addRoutes(sessioned.Group("/forms"), []route{
				{Method: http.MethodPost, Path: "/start", Handler: h.Form.Start, Mw: []gin.HandlerFunc{mw.StartThrottle.Middleware()}},
				{Method: http.MethodGet, Path: "/honeypot", Handler: h.Form.Honeypot},
			})

			throttled := []gin.HandlerFunc{mw.Throttle.Middleware()}
			addRoutes(sessioned, []route{
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Inquiry.SubmitBooking, Mw: throttled},
				{Method: http.MethodPost, Path: "/contact", Handler: h.Inquiry.SubmitContact, Mw: throttled},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{Status: "ok"})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
