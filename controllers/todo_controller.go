package controllers

import (
	"dailydo/constants"
	"dailydo/dto"
	"dailydo/middlewares"
	"dailydo/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ITodoController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type TodoController struct {
	service services.ITodoService
	logs    *zap.SugaredLogger
}

func NewTodoController(service services.ITodoService, logs *zap.SugaredLogger) ITodoController {
	return &TodoController{service: service, logs: logs}
}

func (c *TodoController) FindAll(ctx *gin.Context) {
	todos, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		c.handleError(ctx, "list todos", err)
		return
	}

	ctx.JSON(http.StatusOK, todos)
}

func (c *TodoController) FindById(ctx *gin.Context) {
	todoID, ok := parseID(ctx)
	if !ok {
		return
	}

	todo, err := c.service.FindById(ctx.Request.Context(), todoID)
	if err != nil {
		c.handleError(ctx, "get todo", err)
		return
	}

	ctx.JSON(http.StatusOK, todo)
}

func (c *TodoController) Create(ctx *gin.Context) {
	var input dto.TodoInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrInvalidInput})
		return
	}

	newTodo, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		c.handleError(ctx, "create todo", err)
		return
	}

	ctx.JSON(http.StatusOK, newTodo)
}

func (c *TodoController) Update(ctx *gin.Context) {
	todoID, ok := parseID(ctx)
	if !ok {
		return
	}

	var input dto.TodoInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrInvalidInput})
		return
	}

	updatedTodo, err := c.service.Update(ctx.Request.Context(), todoID, input)
	if err != nil {
		c.handleError(ctx, "update todo", err)
		return
	}

	ctx.JSON(http.StatusOK, updatedTodo)
}

func (c *TodoController) Delete(ctx *gin.Context) {
	todoID, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), todoID); err != nil {
		c.handleError(ctx, "delete todo", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgTaskDeleted})
}

func (c *TodoController) handleError(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrTodoNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"detail": constants.ErrTaskNotFound})
	case errors.Is(err, services.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"detail": constants.ErrUserNotFound})
	case errors.Is(err, services.ErrInvalidTodo):
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		c.logs.Errorw("todo request failed",
			"error", err,
			"operation", op,
			"request_id", middlewares.RequestID(ctx))
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": constants.ErrUnexpected})
	}
}

func parseID(ctx *gin.Context) (uint, bool) {
	todoID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrInvalidID})
		return 0, false
	}
	return uint(todoID), true
}
