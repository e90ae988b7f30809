package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Readiness reports whether the data behind a route has finished loading.
type Readiness interface {
	Ready() bool
}

// RequireReady answers 503 until r is ready.
func RequireReady(r Readiness) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.Ready() {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Data is still loading"})
			return
		}
		c.Next()
	}
}
