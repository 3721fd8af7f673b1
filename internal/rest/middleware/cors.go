package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultAllowedOrigins are the front ends served by this API
var DefaultAllowedOrigins = []string{"http://localhost:3000", "https://vactor.vercel.app"}

const allowedMethods = "GET, POST, PATCH, DELETE, PUT"

// CORS only answers origins from the allow list. Requests without an Origin
// header (curl, server to server) pass through.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		allowedOrigins = DefaultAllowedOrigins
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}
		if !slices.Contains(allowedOrigins, strings.TrimRight(origin, "/")) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not allowed by CORS"})
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Methods", allowedMethods)
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		h.Add("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
