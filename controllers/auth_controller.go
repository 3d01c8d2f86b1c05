package controllers

import (
	"dailydo/constants"
	"dailydo/dto"
	"dailydo/middlewares"
	"dailydo/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Login(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
	logs    *zap.SugaredLogger
}

func NewAuthController(service services.IAuthService, logs *zap.SugaredLogger) IAuthController {
	return &AuthController{service: service, logs: logs}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBindQuery(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrMissingCredentials})
		return
	}

	err := c.service.Signup(ctx.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrMissingCredentials})
		case errors.Is(err, services.ErrEmailRegistered):
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrEmailRegistered})
		default:
			c.logs.Errorw("signup failed",
				"error", err,
				"request_id", middlewares.RequestID(ctx))
			ctx.JSON(http.StatusInternalServerError, gin.H{"detail": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgSignupSuccessful})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindQuery(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrMissingCredentials})
		return
	}

	user, err := c.service.Login(ctx.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrMissingCredentials})
		case errors.Is(err, services.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"detail": constants.ErrUserNotFound})
		case errors.Is(err, services.ErrIncorrectPassword):
			ctx.JSON(http.StatusUnauthorized, gin.H{"detail": constants.ErrIncorrectPassword})
		default:
			c.logs.Errorw("login failed",
				"error", err,
				"request_id", middlewares.RequestID(ctx))
			ctx.JSON(http.StatusInternalServerError, gin.H{"detail": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: constants.MsgLoginSuccessful,
		User:    user,
	})
}
