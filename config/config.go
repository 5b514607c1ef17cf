package config

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/cosmos/abidecoder/types"

	errorsmod "cosmossdk.io/errors"
)

const (
	// EnvPrefix is the prefix of environment variables overriding config keys,
	// e.g. ABIDECODER_LOG_LEVEL.
	EnvPrefix = "ABIDECODER"

	KeyABIFiles  = "abi"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyMetrics   = "metrics"

	LogFormatPlain = "plain"
	LogFormatJSON  = "json"

	DefaultLogLevel  = "info"
	DefaultLogFormat = LogFormatPlain
)

// Config holds the decoder CLI settings.
type Config struct {
	// ABIFiles are loaded into the registry in order.
	ABIFiles  []string
	LogLevel  string
	LogFormat string
	// Metrics enables the in-memory telemetry sink.
	Metrics bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Validate checks the log settings.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidConfig, "invalid log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return errorsmod.Wrapf(types.ErrInvalidConfig, "invalid log format %q, expected %s or %s", c.LogFormat, LogFormatPlain, LogFormatJSON)
	}
	for _, path := range c.ABIFiles {
		if strings.TrimSpace(path) == "" {
			return errorsmod.Wrap(types.ErrInvalidConfig, "empty ABI file path")
		}
	}
	return nil
}
