package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func LoggingMiddleware(logs *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		fields := []interface{}{
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", ctx.ClientIP(),
			"request_id", RequestID(ctx),
		}
		if len(ctx.Errors) > 0 {
			fields = append(fields, "errors", ctx.Errors.String())
		}

		if ctx.Writer.Status() >= 500 {
			logs.Errorw("request failed", fields...)
			return
		}
		logs.Infow("request handled", fields...)
	}
}
