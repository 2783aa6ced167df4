package middlewares

import (
	"medisense-service/internal/pkg/exceptions"
	"medisense-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles per client IP and blocks an IP for blockTime once it exceeds its budget.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

// NewRateLimiter allows requests events per period per IP, with the same number as burst.
func NewRateLimiter(requests int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !rl.allow(ip) {
			utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if blockedUntil, found := rl.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(rl.blocked, ip)
	}

	limiter, exists := rl.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(rl.per/time.Duration(rl.requests)), rl.requests)
		rl.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		rl.blocked[ip] = now.Add(rl.blockTime)
		return false
	}
	return true
}

// NewAuthRateLimiter throttles credential attempts with APP_AUTH_RATE_LIMIT_PER_MINUTE.
func (m *Middlewares) NewAuthRateLimiter() *RateLimiter {
	return NewRateLimiter(m.InternalConfig.App.AuthRateLimitPerMinute, time.Minute, time.Minute, m.Log)
}
