package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"notekeep/utils"
)

// RecoveryMiddleware converts a panic into a 500 instead of tearing down the
// connection.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				utils.TrackError("http", "panic")
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
