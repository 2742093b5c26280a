// Package testutil sets up isolated databases and configuration for tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"portfolio-api/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestSecret is long enough to pass production validation.
const TestSecret = "test-secret-that-is-at-least-32-bytes-long"

// NewDB opens a private in-memory SQLite database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive and serialises writers.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

// TestConfig returns a configuration suitable for handler tests.
func TestConfig() *config.Config {
	return &config.Config{
		Port:           "0",
		Env:            config.EnvTest,
		LogLevel:       "error",
		LogFormat:      "text",
		DBDriver:       config.DriverSQLite,
		JWTSecret:      TestSecret,
		JWTExpiration:  168 * time.Hour,
		AuthCookieName: "token",
		AllowedOrigins: []string{"http://localhost:5173"},
		LoginRateLimit: 1000,
		LoginBurst:     1000,
		CachePrefix:    "test:",
		CacheTTL:       time.Hour,
	}
}
