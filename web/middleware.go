package web

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// CorsMiddleware handles CORS headers for cross-origin requests.
// The search API is read-only, so only GET and preflight are allowed.
func CorsMiddleware(c rweb.Context) error {
	c.Response().SetHeader("Access-Control-Allow-Origin", "*")
	c.Response().SetHeader("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Response().SetHeader("Access-Control-Allow-Headers", "Content-Type, HX-Request, X-Requested-With")

	// Handle preflight OPTIONS requests
	if c.Request().Method() == "OPTIONS" {
		c.SetStatus(http.StatusOK)
		return nil
	}

	return c.Next()
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// Content Security Policy - gallery images come from the stock photo CDN,
	// and the HTMX library is loaded from a CDN
	csp := []string{
		"default-src 'self'",
		"script-src 'self' https://cdn.jsdelivr.net https://unpkg.com",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data: https:",
		"connect-src 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// RequestIDMiddleware tags every request with a UUID so log lines from one
// request can be correlated.
func RequestIDMiddleware(c rweb.Context) error {
	reqID := c.Request().Header("X-Request-ID")
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Set("request_id", reqID)
	c.Response().SetHeader("X-Request-ID", reqID)
	return c.Next()
}

// LoggingMiddleware provides detailed request logging
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()
	reqID, _ := c.Get("request_id").(string)

	logger.Debug("Request started",
		"request_id", reqID,
		"method", c.Request().Method(),
		"path", c.Request().Path(),
	)

	err := c.Next()

	duration := time.Since(start)
	logger.Debug("Request completed",
		"request_id", reqID,
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"duration", duration,
		"error", err,
	)

	return err
}

type visitor struct {
	lastSeen time.Time
	count    int
}

// rateLimiter tracks per-IP request counts over a one-minute window.
// rweb serves each connection on its own goroutine, so every access to the
// visitors map must hold the mutex.
type rateLimiter struct {
	mu       sync.Mutex
	limit    int
	visitors map[string]*visitor
}

func newRateLimiter(requestsPerMinute int) *rateLimiter {
	return &rateLimiter{
		limit:    requestsPerMinute,
		visitors: make(map[string]*visitor),
	}
}

// Allow records a request from ip and reports whether it is within the limit.
func (rl *rateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Clean up old entries periodically
	now := time.Now()
	for addr, v := range rl.visitors {
		if now.Sub(v.lastSeen) > time.Minute {
			delete(rl.visitors, addr)
		}
	}

	v, exists := rl.visitors[ip]
	if !exists {
		rl.visitors[ip] = &visitor{lastSeen: now, count: 1}
		return true
	}

	if now.Sub(v.lastSeen) < time.Minute {
		v.count++
		return v.count <= rl.limit
	}

	v.lastSeen = now
	v.count = 1
	return true
}

// RateLimitMiddleware implements basic per-IP rate limiting. Only the /api/
// routes are limited - page loads and static assets cost nothing upstream.
func RateLimitMiddleware(requestsPerMinute int) rweb.Handler {
	// Simple in-memory rate limiter (production should use Redis or similar)
	limiter := newRateLimiter(requestsPerMinute)

	return func(c rweb.Context) error {
		if !strings.HasPrefix(c.Request().Path(), "/api/") {
			return c.Next()
		}

		ip := c.Request().Header("X-Forwarded-For")
		if ip == "" {
			ip = c.Request().Header("X-Real-IP")
		}
		if ip == "" {
			// Fallback to remote address from connection
			ip = "unknown"
		}

		if !limiter.Allow(ip) {
			logger.Info("Rate limit exceeded", "ip", ip)
			c.SetStatus(http.StatusTooManyRequests)
			return nil
		}

		return c.Next()
	}
}
