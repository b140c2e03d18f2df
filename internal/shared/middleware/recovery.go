package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/logger"
)

// Recovery turns a panic that escaped a handler into the generic 500.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("Panic recovered ("+c.GetString(RequestIDKey)+")", fmt.Errorf("%v", rec))
				response.InternalServerError(c, response.GenericErrorMessage)
				c.Abort()
			}
		}()

		c.Next()
	}
}
