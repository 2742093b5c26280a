package config

import (
	"fmt"

	"portfolio-api/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// singleAdminIndex keeps the owner unique even when two first registrations race.
const singleAdminIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_single_admin ON users (role) WHERE role = 'admin'`

// InitDB opens the configured database and migrates the schema.
func InitDB(cfg *Config, log *logrus.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DatabaseURL)
	default:
		dialector = postgres.Open(cfg.DatabaseURL)
	}

	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(log, gormlogger.Config{
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.DBDriver, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.WithField("driver", cfg.DBDriver).Info("database ready")
	return db, nil
}

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Education{},
		&models.Certification{},
		&models.Testimonial{},
		&models.Article{},
	); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	if err := db.Exec(singleAdminIndex).Error; err != nil {
		return fmt.Errorf("creating single admin index: %w", err)
	}
	return nil
}
