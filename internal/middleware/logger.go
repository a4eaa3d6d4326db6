package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorLogger logs request outcomes and recovers from panics.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequest(c, start, "panic", err.Error())
				log.Printf("stack:\n%s", debug.Stack())

				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": "Internal server error",
					},
				})
				c.Abort()
			}
		}()

		c.Next()

		status := c.Writer.Status()
		if status >= 500 {
			logRequest(c, start, "error", c.Errors.String())
		} else if status >= 400 {
			logRequest(c, start, "warn", "")
		}
	}
}

func logRequest(c *gin.Context, start time.Time, level, detail string) {
	log.Printf("[%s] %s %s -> %d (%s) %s",
		level,
		c.Request.Method,
		c.Request.URL.Path,
		c.Writer.Status(),
		time.Since(start),
		detail,
	)
}
