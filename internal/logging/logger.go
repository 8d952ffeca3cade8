// Package logging provides a thin, structured logger for the engine.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with the fields the engine cares about.
type Logger struct {
	*logrus.Logger
}

// New creates a new Logger reading its level from LOG_LEVEL (or the
// given default when unset/invalid), writing to stderr.
func New(level string) *Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if level == "" {
		level = "info"
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		level = envLevel
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &Logger{Logger: logger}
}

// WithField adds a field to the log entry.
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.Logger.WithField(key, value)
}

// WithFields adds multiple fields to the log entry.
func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.Logger.WithFields(fields)
}
