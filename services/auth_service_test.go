package services_test

import (
	"context"
	"dailydo/dto"
	"dailydo/services"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupOnlyOncePerEmail(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	require.NoError(t, svc.auth.Signup(ctx, dto.SignupInput{Email: "a@x.com", Password: "pw1"}))

	err := svc.auth.Signup(ctx, dto.SignupInput{Email: "a@x.com", Password: "other"})
	assert.ErrorIs(t, err, services.ErrEmailRegistered)
}

func TestSignupMissingFields(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	for _, input := range []dto.SignupInput{
		{},
		{Email: "a@x.com"},
		{Password: "pw1"},
	} {
		err := svc.auth.Signup(ctx, input)
		assert.ErrorIs(t, err, services.ErrMissingCredentials)
	}
}

func TestLogin(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	require.NoError(t, svc.auth.Signup(ctx, dto.SignupInput{Email: "a@x.com", Password: "pw1"}))

	tests := []struct {
		name    string
		input   dto.LoginInput
		wantErr error
	}{
		{name: "matching credentials", input: dto.LoginInput{Email: "a@x.com", Password: "pw1"}},
		{name: "wrong password", input: dto.LoginInput{Email: "a@x.com", Password: "pw2"}, wantErr: services.ErrIncorrectPassword},
		{name: "password differs in case", input: dto.LoginInput{Email: "a@x.com", Password: "PW1"}, wantErr: services.ErrIncorrectPassword},
		{name: "unknown email", input: dto.LoginInput{Email: "b@x.com", Password: "pw1"}, wantErr: services.ErrUserNotFound},
		{name: "missing password", input: dto.LoginInput{Email: "a@x.com"}, wantErr: services.ErrMissingCredentials},
		{name: "missing email", input: dto.LoginInput{Password: "pw1"}, wantErr: services.ErrMissingCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.auth.Login(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, user.ID)
			assert.Equal(t, "a@x.com", user.Email)
			assert.Equal(t, "pw1", user.Password)
		})
	}
}
