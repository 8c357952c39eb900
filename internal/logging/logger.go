// Package logging builds the process-wide zap logger from configuration.
package logging

import (
	"fmt"

	"fleet-service/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const errInvalidLogLevelFmt = "invalid log level %q: %w"

// New returns a zap logger configured for the given format and level.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf(errInvalidLogLevelFmt, cfg.Level, err)
	}

	var zapCfg zap.Config
	if cfg.Format == config.LogFormatConsole {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
