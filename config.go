package gocast

import (
	"crypto/tls"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/go-cast/gocast/pkg/wire"
)

// Default timing constants, matching the literal values in §4.5.
const (
	DefaultHeartbeatInterval  = 5 * time.Second
	DefaultStatusPollInterval = 150 * time.Millisecond
	DefaultDialTimeout        = 10 * time.Second
)

// logLevelEnvVar is the only environment variable this package consults
// (§6/§10: "no environment variables beyond optional log-level
// configuration"), mirroring the `Level` field of this codebase's sibling
// services' logging Config.
const logLevelEnvVar = "GOCAST_LOG_LEVEL"

// ClientConfig holds the tunables a caller may override via Option. Zero
// values are replaced by the Default* constants above.
type ClientConfig struct {
	// DialTimeout bounds the TLS handshake performed by Connect.
	DialTimeout time.Duration
	// HeartbeatInterval is how often the keepalive worker sends Ping (§4.5).
	HeartbeatInterval time.Duration
	// StatusPollInterval is how often the status poller worker polls
	// receiver/media status (§4.5).
	StatusPollInterval time.Duration
	// MaxFrameSize bounds encoded/decoded frame payloads (§4.1).
	MaxFrameSize int
	// TLSConfig is used for the outbound TLS dial. Chromecasts present
	// self-signed certificates, so InsecureSkipVerify defaults to true
	// (§6: "server certificate unvalidated").
	TLSConfig *tls.Config
	// Logger receives structured logs for every disposition in §7's error
	// taxonomy plus routine dispatch tracing. Set via WithLogger; otherwise
	// a default is built from LogLevel/GOCAST_LOG_LEVEL at Connect time.
	Logger zerolog.Logger
	// LogLevel names the zerolog level ("debug", "info", "warn", "error",
	// ...) used by the default logger. Ignored once WithLogger is used. If
	// empty, GOCAST_LOG_LEVEL is consulted, falling back to info.
	LogLevel string
	// UserAgent is sent in the connection namespace's CONNECT request.
	UserAgent string

	loggerOverridden bool
}

// Option configures a ClientConfig. Functional options follow this
// codebase's own constructor convention for optional configuration.
type Option func(*ClientConfig)

// WithDialTimeout overrides the TLS handshake timeout.
func WithDialTimeout(d time.Duration) Option {
	return func(c *ClientConfig) { c.DialTimeout = d }
}

// WithHeartbeatInterval overrides the keepalive ping interval.
func WithHeartbeatInterval(d time.Duration) Option {
	return func(c *ClientConfig) { c.HeartbeatInterval = d }
}

// WithStatusPollInterval overrides the status poller tick interval.
func WithStatusPollInterval(d time.Duration) Option {
	return func(c *ClientConfig) { c.StatusPollInterval = d }
}

// WithMaxFrameSize overrides the maximum encoded/decoded frame size enforced
// by the wire codec (§4.1).
func WithMaxFrameSize(n int) Option {
	return func(c *ClientConfig) { c.MaxFrameSize = n }
}

// WithTLSConfig overrides the TLS dial configuration entirely.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *ClientConfig) { c.TLSConfig = cfg }
}

// WithLogger overrides the structured logger used for this client, bypassing
// LogLevel/GOCAST_LOG_LEVEL entirely.
func WithLogger(log zerolog.Logger) Option {
	return func(c *ClientConfig) {
		c.Logger = log
		c.loggerOverridden = true
	}
}

// WithLogLevel overrides the default logger's level, taking precedence over
// GOCAST_LOG_LEVEL. Has no effect once WithLogger is used.
func WithLogLevel(level string) Option {
	return func(c *ClientConfig) { c.LogLevel = level }
}

// WithUserAgent overrides the user agent string sent on CONNECT.
func WithUserAgent(ua string) Option {
	return func(c *ClientConfig) { c.UserAgent = ua }
}

func defaultConfig() ClientConfig {
	return ClientConfig{
		DialTimeout:        DefaultDialTimeout,
		HeartbeatInterval:  DefaultHeartbeatInterval,
		StatusPollInterval: DefaultStatusPollInterval,
		MaxFrameSize:       wire.DefaultMaxFrameSize,
		TLSConfig:          &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // receiver presents a self-signed cert, §6.
		UserAgent:          "gocast",
	}
}

// resolveLogger returns cfg.Logger unchanged if the caller supplied one via
// WithLogger. Otherwise it builds one per §10: a console writer to stderr
// when stderr is attached to a terminal (development), a bare JSON writer
// otherwise, leveled from LogLevel or GOCAST_LOG_LEVEL (falling back to
// info) — mirroring how this codebase's sibling services configure zerolog.
func resolveLogger(cfg ClientConfig) zerolog.Logger {
	if cfg.loggerOverridden {
		return cfg.Logger
	}

	levelStr := cfg.LogLevel
	if levelStr == "" {
		levelStr = os.Getenv(logLevelEnvVar)
	}
	level := zerolog.InfoLevel
	if levelStr != "" {
		if parsed, err := zerolog.ParseLevel(levelStr); err == nil {
			level = parsed
		}
	}

	var w io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
