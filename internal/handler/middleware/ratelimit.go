package middleware

import (
	"net/http"
	"sync"
	"time"

	"retreat-api/internal/handler/httperr"
	"retreat-api/internal/pkg/config"
	"retreat-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const msgTooManyRequests = "Too many requests. Please slow down and try again shortly."

var ErrThrottled = errs.New("request throttled")

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPThrottle is a per-IP token bucket. The client IP honours X-Forwarded-For only from trusted proxies.
type IPThrottle struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

func NewIPThrottle(cfg config.ThrottleConfig) *IPThrottle {
	return &IPThrottle{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
		idleTTL:  10 * time.Minute,
		now:      time.Now,
	}
}

func (t *IPThrottle) allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	v, ok := t.visitors[ip]
	if !ok {
		// drop idle buckets opportunistically
		for k, old := range t.visitors {
			if now.Sub(old.lastSeen) > t.idleTTL {
				delete(t.visitors, k)
			}
		}
		v = &visitor{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func (t *IPThrottle) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !t.allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, ErrThrottled, msgTooManyRequests, nil)
			return
		}
		c.Next()
	}
}
