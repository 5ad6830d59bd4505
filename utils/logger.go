package utils

import (
	"go.uber.org/zap"
)

// Log is the process-wide sugared logger. It defaults to a nop logger so
// packages can log before InitLogger runs (and in tests).
var Log = zap.NewNop().Sugar()

func InitLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = logger.Sugar()
	return Log
}
