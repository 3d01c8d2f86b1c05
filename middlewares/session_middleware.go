package middlewares

import (
	"context"
	"dailydo/constants"
	"dailydo/infra"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionMiddleware runs the rest of the chain inside one unit-of-work.
// The connection is released after the handler returns, also when it aborts
// or panics.
func SessionMiddleware(db *gorm.DB, logs *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		original := ctx.Request
		err := infra.OpenSession(ctx.Request.Context(), db, func(sessionCtx context.Context) error {
			ctx.Request = ctx.Request.WithContext(sessionCtx)
			ctx.Next()
			return nil
		})
		ctx.Request = original

		if err != nil {
			logs.Errorw("failed to open database session",
				"error", err,
				"path", ctx.Request.URL.Path,
				"request_id", RequestID(ctx))
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": constants.ErrUnexpected})
		}
	}
}
