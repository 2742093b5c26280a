package logger

import (
	"os"

	"portfolio-api/config"

	"github.com/sirupsen/logrus"
)

// New builds the process logger from LOG_LEVEL and LOG_FORMAT.
// An unknown level falls back to info.
func New(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	}
	return log
}
