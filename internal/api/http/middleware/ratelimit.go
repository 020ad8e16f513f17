package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/entnt/dentalcare-server/internal/api/http/response"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// visitor tracks one client IP's limiter and last activity.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit is a per-IP token-bucket rate limiter.
type RateLimit struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
}

// NewRateLimit creates a rate limiter allowing r requests per second with the
// given burst per client IP. Idle IPs are evicted in the background.
func NewRateLimit(r rate.Limit, burst int) *RateLimit {
	l := &RateLimit{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
	}
	go l.cleanupVisitors()
	return l
}

// Handle rejects requests exceeding the caller's budget with 429.
func (l *RateLimit) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.limiterFor(c.ClientIP()).Allow() {
			response.JSON(c, http.StatusTooManyRequests, false, "too many requests", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (l *RateLimit) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors drops IPs idle for more than three minutes.
func (l *RateLimit) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)
		l.mu.Lock()
		for ip, v := range l.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}
