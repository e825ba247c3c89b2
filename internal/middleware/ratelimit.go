package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leapfroghealth/leapfrog/backend/internal/apierror"
	"github.com/leapfroghealth/leapfrog/backend/internal/logger"
)

// RateLimiter counts requests per client IP inside a fixed window.
type RateLimiter struct {
	mu      sync.RWMutex
	clients map[string]*clientWindow
	rate    int
	window  time.Duration
	name    string
}

type clientWindow struct {
	count    int
	lastSeen time.Time
}

// NewRateLimiter starts a limiter allowing rate requests per window.
// A background goroutine evicts clients idle for two windows.
func NewRateLimiter(rate int, window time.Duration, name string) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientWindow),
		rate:    rate,
		window:  window,
		name:    name,
	}
	go rl.evictIdle()

	logger.Default().Debug("rate limiter initialized",
		logger.String("name", name),
		logger.Int("rate", rate),
		logger.Duration("window", window),
	)
	return rl
}

func (rl *RateLimiter) evictIdle() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		evicted := 0
		for ip, w := range rl.clients {
			if now.Sub(w.lastSeen) > rl.window*2 {
				delete(rl.clients, ip)
				evicted++
			}
		}
		remaining := len(rl.clients)
		rl.mu.Unlock()

		if evicted > 0 {
			logger.Default().Debug("rate limiter eviction",
				logger.String("name", rl.name),
				logger.Int("evicted", evicted),
				logger.Int("remaining", remaining),
			)
		}
	}
}

func (rl *RateLimiter) isAllowed(ip string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.clients[ip]
	if !ok || now.Sub(w.lastSeen) > rl.window {
		rl.clients[ip] = &clientWindow{count: 1, lastSeen: now}
		return true, 1
	}

	w.count++
	w.lastSeen = now
	return w.count <= rl.rate, w.count
}

// RateLimit limits general API traffic to 300 requests per minute per IP.
func RateLimit() gin.HandlerFunc {
	return limitWith(NewRateLimiter(300, time.Minute, "general"))
}

// RateLimitAnalysis is the tighter limit for the analytics endpoints,
// which fan out to several table scans and may call the external
// classifier.
func RateLimitAnalysis() gin.HandlerFunc {
	return limitWith(NewRateLimiter(30, time.Minute, "analysis"))
}

func limitWith(limiter *RateLimiter) gin.HandlerFunc {
	retryAfter := int(limiter.window.Seconds())
	return func(c *gin.Context) {
		ip := c.ClientIP()

		allowed, count := limiter.isAllowed(ip)
		if !allowed {
			logger.FromContext(c.Request.Context()).Warn("rate limit exceeded",
				logger.String("limiter", limiter.name),
				logger.String("client_ip", ip),
				logger.Int("request_count", count),
				logger.Int("limit", limiter.rate),
				logger.Duration("window", limiter.window),
			)

			c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.rate))
			c.Header("X-RateLimit-Remaining", "0")
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewRateLimitError(requestID, retryAfter))
			c.Abort()
			return
		}

		c.Next()
	}
}
