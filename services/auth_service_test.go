package services

import (
	"context"
	"testing"

	"portfolio-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_FirstRegistrantIsAdmin(t *testing.T) {
	f := newFixture(t)

	first := f.register(t, "Owner", "Owner@Example.com")
	second := f.register(t, "Visitor", "visitor@example.com")
	third := f.register(t, "Another", "another@example.com")

	assert.Equal(t, models.RoleAdmin, first.Role)
	assert.Equal(t, "owner@example.com", first.Email)
	assert.Equal(t, models.RoleUser, second.Role)
	assert.Equal(t, models.RoleUser, third.Role)
	assert.NotEqual(t, "secret123", first.Password)

	var admins int64
	require.NoError(t, f.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error)
	assert.EqualValues(t, 1, admins)
}

func TestAuthService_RegisterRejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "Owner", "owner@example.com")

	_, err := f.auth.Register(ctx, models.RegisterRequest{Name: "Dup", Email: "OWNER@example.com", Password: "secret123"})
	assert.ErrorAs(t, err, &models.ErrorConflict{})

	_, err = f.auth.Register(ctx, models.RegisterRequest{Name: "Short", Email: "short@example.com", Password: "123"})
	var verr models.ErrorValidation
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "password")

	_, err = f.auth.Register(ctx, models.RegisterRequest{Name: "Bad", Email: "nope", Password: "secret123"})
	assert.ErrorAs(t, err, &models.ErrorValidation{})

	var count int64
	require.NoError(t, f.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "Owner", "owner@example.com")

	resp, err := f.auth.Login(ctx, models.LoginRequest{Email: " OWNER@example.com ", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, owner.ID.String(), resp.User.ID)
	assert.NotNil(t, resp.User.LastLoginAt)

	identity, err := f.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, identity.ID)
	assert.Equal(t, owner.Email, identity.Email)
	assert.Equal(t, models.RoleAdmin, identity.Role)

	verified, err := f.auth.Verify(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, verified.ID)

	resp, err = f.auth.Login(ctx, models.LoginRequest{Email: "owner@example.com", Password: "wrong-password"})
	assert.ErrorAs(t, err, &models.ErrorUnauthorized{})
	assert.Nil(t, resp)

	_, err = f.auth.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "secret123"})
	assert.ErrorAs(t, err, &models.ErrorUnauthorized{})
}

func TestAuthService_FirstAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.FirstAdmin(ctx)
	assert.ErrorAs(t, err, &models.ErrorNoAdminUser{})

	owner := f.register(t, "Owner", "owner@example.com")
	got, err := f.auth.FirstAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, got.ID)
}

func TestAuthService_ChangePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "Owner", "owner@example.com")

	err := f.auth.ChangePassword(ctx, owner.ID, models.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "newsecret"})
	assert.ErrorAs(t, err, &models.ErrorUnauthorized{})

	err = f.auth.ChangePassword(ctx, owner.ID, models.ChangePasswordRequest{CurrentPassword: "secret123", NewPassword: "newsecret"})
	require.NoError(t, err)

	_, err = f.auth.Login(ctx, models.LoginRequest{Email: "owner@example.com", Password: "secret123"})
	assert.ErrorAs(t, err, &models.ErrorUnauthorized{})
	_, err = f.auth.Login(ctx, models.LoginRequest{Email: "owner@example.com", Password: "newsecret"})
	assert.NoError(t, err)
}
