package config

import "go.uber.org/zap"

// Log is the process logger. It discards everything until InitLogger runs.
var Log = zap.NewNop()

func InitLogger(env string) error {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	Log = logger
	return nil
}

func SyncLogger() {
	_ = Log.Sync()
}
