package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus with application defaults
type Logger struct {
	*logrus.Logger
}

// NewLogger creates a configured logger. Format is "json" or "text";
// unknown levels fall back to info.
func NewLogger(level, format string) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return &Logger{Logger: log}
}
