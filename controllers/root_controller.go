package controllers

import (
	"dailydo/constants"
	"net/http"

	"github.com/gin-gonic/gin"
)

func Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": constants.MsgWelcome,
		"title":   constants.AppTitle,
		"version": constants.AppVersion,
	})
}
