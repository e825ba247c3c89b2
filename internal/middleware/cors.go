package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcardOrigin is a parsed "scheme://*.suffix" origin pattern. Only a
// single leading subdomain wildcard is supported.
type wildcardOrigin struct {
	scheme string
	suffix string
}

// parseWildcardOrigin parses an origin pattern like
// "https://*.example.com". Returns nil if the pattern is not a valid
// single-subdomain wildcard.
func parseWildcardOrigin(pattern string) *wildcardOrigin {
	var scheme string
	switch {
	case strings.HasPrefix(pattern, "https://"):
		scheme = "https://"
	case strings.HasPrefix(pattern, "http://"):
		scheme = "http://"
	default:
		return nil
	}

	host := strings.TrimPrefix(pattern, scheme)
	if !strings.HasPrefix(host, "*.") {
		return nil
	}
	suffix := host[1:]
	if strings.Contains(suffix, "*") {
		return nil
	}
	// the wildcard must cover a real subdomain of a multi-label domain
	if strings.Count(suffix, ".") < 2 {
		return nil
	}

	return &wildcardOrigin{scheme: scheme, suffix: suffix}
}

// matches reports whether origin is this pattern's scheme plus exactly
// one subdomain label followed by the suffix.
func (w *wildcardOrigin) matches(origin string) bool {
	if !strings.HasPrefix(origin, w.scheme) {
		return false
	}
	host := strings.TrimPrefix(origin, w.scheme)
	if !strings.HasSuffix(host, w.suffix) {
		return false
	}
	sub := strings.TrimSuffix(host, w.suffix)
	return sub != "" && !strings.ContainsAny(sub, "./")
}

// CORS middleware to handle cross-origin requests.
// Reads CORS_ALLOWED_ORIGINS (comma-separated; exact origins or
// "https://*.domain.tld" wildcard patterns) to restrict origins.
// If not set, defaults to "*" (allow all origins).
func CORS() gin.HandlerFunc {
	allowedOriginsStr := os.Getenv("CORS_ALLOWED_ORIGINS")
	allowAll := allowedOriginsStr == ""

	var exactOrigins []string
	var wildcards []*wildcardOrigin
	if !allowAll {
		for _, origin := range strings.Split(allowedOriginsStr, ",") {
			origin = strings.TrimSpace(origin)
			if w := parseWildcardOrigin(origin); w != nil {
				wildcards = append(wildcards, w)
				continue
			}
			exactOrigins = append(exactOrigins, origin)
		}
	}

	originAllowed := func(origin string) bool {
		for _, allowed := range exactOrigins {
			if origin == allowed {
				return true
			}
		}
		for _, w := range wildcards {
			if w.matches(origin) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if originAllowed(origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		} else if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
