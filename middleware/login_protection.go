package middleware

import (
	"sync"

	"portfolio-api/helper"
	"portfolio-api/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// maxTrackedIPs bounds the limiter map; it is reset wholesale once exceeded.
const maxTrackedIPs = 10000

// ipLimiters hands out one token bucket per client IP.
type ipLimiters struct {
	mu    sync.Mutex
	byIP  map[string]*rate.Limiter
	limit rate.Limit
	burst int
	max   int
}

func newIPLimiters(rps float64, burst, maxIPs int) *ipLimiters {
	return &ipLimiters{
		byIP:  make(map[string]*rate.Limiter),
		limit: rate.Limit(rps),
		burst: burst,
		max:   maxIPs,
	}
}

// allow consumes a token for ip. reset reports whether the map was dropped
// to make room for a new address.
func (l *ipLimiters) allow(ip string) (ok, reset bool) {
	l.mu.Lock()
	lim, found := l.byIP[ip]
	if !found {
		if len(l.byIP) >= l.max {
			l.byIP = make(map[string]*rate.Limiter)
			reset = true
		}
		lim = rate.NewLimiter(l.limit, l.burst)
		l.byIP[ip] = lim
	}
	l.mu.Unlock()
	return lim.Allow(), reset
}

// LoginProtection rate limits credential endpoints per client IP.
type LoginProtection struct {
	limiters *ipLimiters
	helper   *helper.HTTPHelper
	log      logrus.FieldLogger
}

// NewLoginProtection falls back to 0.5 rps with a burst of 5 for non-positive values.
func NewLoginProtection(rps float64, burst int, h *helper.HTTPHelper, log logrus.FieldLogger) *LoginProtection {
	if rps <= 0 {
		rps = 0.5
	}
	if burst <= 0 {
		burst = 5
	}
	return &LoginProtection{
		limiters: newIPLimiters(rps, burst, maxTrackedIPs),
		helper:   h,
		log:      log,
	}
}

func (lp *LoginProtection) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		ok, reset := lp.limiters.allow(ip)
		if reset {
			lp.log.WithField("max", maxTrackedIPs).Info("login limiter table full, reset")
		}
		if !ok {
			lp.log.WithFields(logrus.Fields{"ip": ip, "path": c.Request.URL.Path}).Warn("login rate limit exceeded")
			lp.helper.SendError(c, models.ErrorTooManyRequests{})
			return
		}
		c.Next()
	}
}
