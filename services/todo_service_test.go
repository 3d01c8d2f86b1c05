package services_test

import (
	"context"
	"dailydo/dto"
	"dailydo/models"
	"dailydo/services"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupAndLogin(t *testing.T, svc testServices, email string) *models.User {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, svc.auth.Signup(ctx, dto.SignupInput{Email: email, Password: "pw"}))
	user, err := svc.auth.Login(ctx, dto.LoginInput{Email: email, Password: "pw"})
	require.NoError(t, err)
	return user
}

func userRef(id uint) *int64 {
	ref := int64(id)
	return &ref
}

func TestCreateTodoRequiresExistingUser(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	for _, id := range []int64{999, 0, -1} {
		_, err := svc.todo.Create(ctx, dto.TodoInput{Content: "buy milk", UserID: &id})
		assert.ErrorIs(t, err, services.ErrUserNotFound, "user_id %d", id)
	}

	_, err := svc.todo.Create(ctx, dto.TodoInput{Content: "buy milk"})
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestCreateTodo(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	user := signupAndLogin(t, svc, "a@x.com")

	todo, err := svc.todo.Create(ctx, dto.TodoInput{Content: "buy milk", UserID: userRef(user.ID)})
	require.NoError(t, err)
	assert.NotZero(t, todo.ID)
	assert.Equal(t, "buy milk", todo.Content)
	assert.False(t, todo.IsCompleted)
	require.NotNil(t, todo.UserID)
	assert.Equal(t, user.ID, *todo.UserID)
}

func TestCreateTodoInvalidContent(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	user := signupAndLogin(t, svc, "a@x.com")

	_, err := svc.todo.Create(ctx, dto.TodoInput{Content: "no", UserID: userRef(user.ID)})
	assert.ErrorIs(t, err, services.ErrInvalidTodo)
}

func TestFindAllEmptyIsNotFound(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	_, err := svc.todo.FindAll(ctx)
	assert.ErrorIs(t, err, services.ErrTodoNotFound)

	alice := signupAndLogin(t, svc, "a@x.com")
	bob := signupAndLogin(t, svc, "b@x.com")
	_, err = svc.todo.Create(ctx, dto.TodoInput{Content: "alice task", UserID: userRef(alice.ID)})
	require.NoError(t, err)
	_, err = svc.todo.Create(ctx, dto.TodoInput{Content: "bob task", UserID: userRef(bob.ID)})
	require.NoError(t, err)

	todos, err := svc.todo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, *todos, 2)
}

func TestUpdateTodoIgnoresUserID(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	alice := signupAndLogin(t, svc, "a@x.com")
	bob := signupAndLogin(t, svc, "b@x.com")

	todo, err := svc.todo.Create(ctx, dto.TodoInput{Content: "buy milk", UserID: userRef(alice.ID)})
	require.NoError(t, err)

	updated, err := svc.todo.Update(ctx, todo.ID, dto.TodoInput{
		Content:     "buy oat milk",
		IsCompleted: true,
		UserID:      userRef(bob.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", updated.Content)
	assert.True(t, updated.IsCompleted)
	require.NotNil(t, updated.UserID)
	assert.Equal(t, alice.ID, *updated.UserID)

	fetched, err := svc.todo.FindById(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *fetched)
}

func TestUpdateTodoErrors(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	user := signupAndLogin(t, svc, "a@x.com")

	_, err := svc.todo.Update(ctx, 42, dto.TodoInput{Content: "buy milk"})
	assert.ErrorIs(t, err, services.ErrTodoNotFound)

	_, err = svc.todo.Update(ctx, 42, dto.TodoInput{Content: "x"})
	assert.ErrorIs(t, err, services.ErrInvalidTodo)

	todo, err := svc.todo.Create(ctx, dto.TodoInput{Content: "buy milk", UserID: userRef(user.ID)})
	require.NoError(t, err)

	_, err = svc.todo.Update(ctx, todo.ID, dto.TodoInput{Content: "x"})
	assert.ErrorIs(t, err, services.ErrInvalidTodo)
}

func TestDeleteThenFindIsNotFound(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	user := signupAndLogin(t, svc, "a@x.com")

	todo, err := svc.todo.Create(ctx, dto.TodoInput{Content: "buy milk", UserID: userRef(user.ID)})
	require.NoError(t, err)

	require.NoError(t, svc.todo.Delete(ctx, todo.ID))

	_, err = svc.todo.FindById(ctx, todo.ID)
	assert.ErrorIs(t, err, services.ErrTodoNotFound)
	assert.ErrorIs(t, svc.todo.Delete(ctx, todo.ID), services.ErrTodoNotFound)
}
