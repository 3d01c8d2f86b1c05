package services_test

import (
	"dailydo/infra"
	"dailydo/models"
	"dailydo/repositories"
	"dailydo/services"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServices struct {
	auth services.IAuthService
	todo services.ITodoService
}

func setupServices(t *testing.T) testServices {
	t.Helper()

	db, err := infra.SetupDB(infra.Config{}, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	t.Cleanup(func() { _ = infra.CloseDB(db) })

	authRepository := repositories.NewAuthRepository(db)
	return testServices{
		auth: services.NewAuthService(authRepository),
		todo: services.NewTodoService(repositories.NewTodoRepository(db), authRepository),
	}
}
