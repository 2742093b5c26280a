package services

import (
	"context"
	"testing"
	"time"

	"portfolio-api/cache"
	"portfolio-api/models"
	"portfolio-api/repositories"
	"portfolio-api/testutil"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	log       logrus.FieldLogger
	users     repositories.UserRepository
	cache     cache.Cache
	resolver  AdminResolver
	validator *Validator
	tokens    TokenManager
	auth      AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	log, _ := test.NewNullLogger()
	users := repositories.NewUserRepository(db)
	c := cache.NewMemoryCache(time.Hour)
	resolver := NewAdminResolver(users, c, log)
	validator := NewValidator()
	tokens := NewTokenManager(testutil.TestSecret, 168*time.Hour)

	return &fixture{
		db:        db,
		log:       log,
		users:     users,
		cache:     c,
		resolver:  resolver,
		validator: validator,
		tokens:    tokens,
		auth:      NewAuthService(users, tokens, resolver, validator, log),
	}
}

func (f *fixture) register(t *testing.T, name, email string) *models.User {
	t.Helper()
	user, err := f.auth.Register(context.Background(), models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func ptr[T any](v T) *T {
	return &v
}

func date(t *testing.T, s string) *models.Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return models.NewDate(parsed)
}
