package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/arjun/examhall/internal/app/models/dto"
)

// ipRateLimiter keeps one token bucket per client IP.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newIPRateLimiter(limit rate.Limit, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (l *ipRateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

// RateLimit rejects requests exceeding the per-IP rate with 429.
func RateLimit(requestsPerSecond float64, burst int) gin.HandlerFunc {
	limiter := newIPRateLimiter(rate.Limit(requestsPerSecond), burst)

	return func(ctx *gin.Context) {
		if !limiter.limiterFor(ctx.ClientIP()).Allow() {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Too many requests")
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(errorDetail))
			return
		}
		ctx.Next()
	}
}
