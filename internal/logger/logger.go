package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/arabizi-coach/internal/config"
)

const appName = "arabizi-coach"

// New builds the application logger. Production gets JSON output at info level,
// every other env a console logger at debug level.
func New(cfg *config.Config) (*zap.Logger, error) {
	var (
		lg  *zap.Logger
		err error
	)
	if cfg.Env == "production" {
		lg, err = zap.NewProduction()
	} else {
		lg, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return lg.With(
		zap.String("app", appName),
		zap.String("env", cfg.Env),
	), nil
}
