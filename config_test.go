package gocast

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-cast/gocast/pkg/wire"
)

func TestDefaultConfigMatchesDocumentedConstants(t *testing.T) {
	cfg := defaultConfig()
	require.Equal(t, DefaultDialTimeout, cfg.DialTimeout)
	require.Equal(t, DefaultHeartbeatInterval, cfg.HeartbeatInterval)
	require.Equal(t, DefaultStatusPollInterval, cfg.StatusPollInterval)
	require.Equal(t, wire.DefaultMaxFrameSize, cfg.MaxFrameSize)
}

func TestWithMaxFrameSizeOverridesDefault(t *testing.T) {
	cfg := defaultConfig()
	WithMaxFrameSize(1024)(&cfg)
	require.Equal(t, 1024, cfg.MaxFrameSize)
}

func TestResolveLoggerHonorsLogLevelOption(t *testing.T) {
	cfg := defaultConfig()
	WithLogLevel("debug")(&cfg)

	log := resolveLogger(cfg)
	require.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestResolveLoggerFallsBackToInfoOnInvalidLevel(t *testing.T) {
	cfg := defaultConfig()
	WithLogLevel("not-a-level")(&cfg)

	log := resolveLogger(cfg)
	require.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestResolveLoggerReadsLogLevelEnvVar(t *testing.T) {
	t.Setenv(logLevelEnvVar, "warn")

	log := resolveLogger(defaultConfig())
	require.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestResolveLoggerOptionTakesPrecedenceOverEnvVar(t *testing.T) {
	t.Setenv(logLevelEnvVar, "warn")

	cfg := defaultConfig()
	WithLogLevel("debug")(&cfg)

	log := resolveLogger(cfg)
	require.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestWithLoggerBypassesLevelResolution(t *testing.T) {
	cfg := defaultConfig()
	custom := zerolog.New(nil).Level(zerolog.ErrorLevel)
	WithLogger(custom)(&cfg)
	WithLogLevel("debug")(&cfg) // should have no effect once WithLogger is used

	log := resolveLogger(cfg)
	require.Equal(t, zerolog.ErrorLevel, log.GetLevel())
}
