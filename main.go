package main

import (
	"context"
	"dailydo/controllers"
	"dailydo/infra"
	"dailydo/middlewares"
	"dailydo/models"
	"dailydo/repositories"
	"dailydo/services"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

func setupRouter(db *gorm.DB, logs *zap.SugaredLogger) *gin.Engine {
	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository)
	authController := controllers.NewAuthController(authService, logs)

	todoRepository := repositories.NewTodoRepository(db)
	todoService := services.NewTodoService(todoRepository, authRepository)
	todoController := controllers.NewTodoController(todoService, logs)

	r := gin.New()
	r.Use(middlewares.RequestIDMiddleware())
	r.Use(middlewares.LoggingMiddleware(logs.Named("http")))
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.GET("/", controllers.Root)

	sessionRouter := r.Group("/", middlewares.SessionMiddleware(db, logs))
	sessionRouter.GET("/login/", authController.Login)
	sessionRouter.POST("/signup/", authController.Signup)

	todoRouter := sessionRouter.Group("/todos")
	todoRouter.GET("/", todoController.FindAll)
	todoRouter.POST("/", todoController.Create)
	todoRouter.GET("/:id", todoController.FindById)
	todoRouter.PUT("/:id", todoController.Update)
	todoRouter.DELETE("/:id", todoController.Delete)

	return r
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("server run into an error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	envErr := infra.Initialize()

	cfg, err := infra.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logs, err := infra.NewLogger("dailydo", cfg.Env)
	if err != nil {
		return err
	}
	defer logs.Sync()

	if envErr != nil {
		logs.Infow("No .env file found; using environment variables")
	}
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := infra.SetupDB(cfg, logs)
	if err != nil {
		logs.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := infra.CloseDB(db); err != nil {
			logs.Errorw("failed to close database", "error", err)
		}
	}()

	if cfg.ShouldMigrate() {
		logs.Infow("Creating tables")
		if err := models.AutoMigrate(db); err != nil {
			logs.Errorw("failed to migrate tables", "error", err)
			return err
		}
		logs.Infow("Tables created")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      setupRouter(db, logs),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logs.Infow("Starting server", "port", cfg.Port, "env", cfg.Env)
		errChan <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
	}

	logs.Infow("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logs.Infow("Server exited")
	return nil
}
