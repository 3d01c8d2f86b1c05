package middlewares

import (
	"dailydo/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware reuses an inbound X-Request-ID or generates one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(constants.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set(constants.RequestIDKey, requestID)
		ctx.Header(constants.RequestIDHeader, requestID)

		ctx.Next()
	}
}

func RequestID(ctx *gin.Context) string {
	return ctx.GetString(constants.RequestIDKey)
}
