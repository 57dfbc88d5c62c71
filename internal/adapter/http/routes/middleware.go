package routes

import (
	"fmt"
	"net/http"
	"time"

	"focusquote/pkg"
	"focusquote/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

func requestID(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(requestIDHeader, reqID)

		ctx := log.WithRequestID(c.Request.Context(), reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx := log.WithField(c.Request.Context(), "method", c.Request.Method)
		ctx = log.WithField(ctx, "path", c.Request.URL.Path)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		ctx = log.WithField(ctx, "status", c.Writer.Status())
		ctx = log.WithField(ctx, "duration_ms", time.Since(start).Milliseconds())
		if c.Writer.Status() >= http.StatusInternalServerError {
			if last := c.Errors.Last(); last != nil {
				log.Error(ctx, last.Err, "request.complete")
				return
			}
			log.Warn(ctx, "request.complete")
			return
		}
		log.Info(ctx, "request.complete")
	}
}

func recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error(c.Request.Context(), fmt.Errorf("panic: %v", recovered), "recovered from panic")
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
