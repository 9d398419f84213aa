// Package logging builds the zap logger used by the CLI and installs it
// behind log/slog, which every other package logs through.
package logging

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/rpg-dungeon/internal/config"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// New builds a zap logger. Unknown levels fall back to info; format "json"
// selects the production encoder and anything else a terse console one.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger, nil
}

// Install routes the global slog functions to logger
func Install(logger *zap.Logger) *slog.Logger {
	l := slog.New(zapslog.NewHandler(logger.Core()))
	slog.SetDefault(l)
	return l
}

// Setup builds the logger from cfg and installs it. The returned func
// flushes buffered entries.
func Setup(cfg config.LoggingConfig) (func(), error) {
	logger, err := New(cfg)
	if err != nil {
		return nil, err
	}
	Install(logger)
	return func() { _ = logger.Sync() }, nil
}
