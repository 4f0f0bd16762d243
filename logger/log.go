package logger

import (
	"os"

	"go.uber.org/zap"
)

var Logger *zap.Logger

// InitializeLogger initializes the global logger.
func InitializeLogger() {
	var err error
	var logger *zap.Logger
	if os.Getenv("ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	Logger = logger
	zap.ReplaceGlobals(logger)
}

// L returns the global logger, initializing a development logger if
// InitializeLogger was never called (keeps tests quiet about nil loggers).
func L() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
