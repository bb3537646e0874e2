package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the human facing logger used by command line tools.
func NewLogrusLogger(env, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	switch env {
	case "production":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}
