package logging_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/rpg-dungeon/internal/config"
	"github.com/KirkDiggler/rpg-dungeon/internal/logging"
)

type LoggingTestSuite struct {
	suite.Suite
	previous *slog.Logger
}

func TestLoggingSuite(t *testing.T) {
	suite.Run(t, new(LoggingTestSuite))
}

func (s *LoggingTestSuite) SetupTest() {
	s.previous = slog.Default()
}

func (s *LoggingTestSuite) TearDownTest() {
	slog.SetDefault(s.previous)
}

func (s *LoggingTestSuite) TestNewLevels() {
	testCases := []struct {
		name  string
		cfg   config.LoggingConfig
		level zapcore.Level
	}{
		{name: "debug console", cfg: config.LoggingConfig{Level: "debug", Format: "console"}, level: zapcore.DebugLevel},
		{name: "warn json", cfg: config.LoggingConfig{Level: "warn", Format: "json"}, level: zapcore.WarnLevel},
		{name: "unknown level", cfg: config.LoggingConfig{Level: "chatty"}, level: zapcore.InfoLevel},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			logger, err := logging.New(tc.cfg)
			s.Require().NoError(err)
			s.True(logger.Core().Enabled(tc.level))
			if tc.level > zapcore.DebugLevel {
				s.False(logger.Core().Enabled(tc.level - 1))
			}
		})
	}
}

func (s *LoggingTestSuite) TestInstallRoutesSlogThroughZap() {
	core, logs := observer.New(zapcore.InfoLevel)
	logging.Install(zap.New(core))

	slog.Info("Descended", "from", 1, "to", 2)
	slog.Debug("dropped below level")

	entries := logs.All()
	s.Require().Len(entries, 1)
	s.Equal("Descended", entries[0].Message)
	s.EqualValues(2, entries[0].ContextMap()["to"])
}
