package config

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/cosmos/abidecoder/types"

	errorsmod "cosmossdk.io/errors"
)

// Options is a source of raw configuration values. *viper.Viper satisfies it.
type Options interface {
	Get(key string) interface{}
}

// NewViper returns a viper instance reading ABIDECODER_* environment
// variables and, when path is set, the given config file (any format viper
// understands).
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidConfig, "read %s: %s", path, err)
		}
	}
	return v, nil
}

// Load builds a validated Config from opts. Unset keys keep their default.
func Load(opts Options) (Config, error) {
	cfg := DefaultConfig()

	if raw := opts.Get(KeyABIFiles); raw != nil {
		files, err := loadABIFiles(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.ABIFiles = files
	}
	if level := cast.ToString(opts.Get(KeyLogLevel)); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if format := cast.ToString(opts.Get(KeyLogFormat)); format != "" {
		cfg.LogFormat = strings.ToLower(format)
	}
	if raw := opts.Get(KeyMetrics); raw != nil {
		enabled, err := cast.ToBoolE(raw)
		if err != nil {
			return Config{}, errorsmod.Wrapf(types.ErrInvalidConfig, "%s: %s", KeyMetrics, err)
		}
		cfg.Metrics = enabled
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadABIFiles accepts a list or a single comma separated string, which is
// how the value arrives from an environment variable.
func loadABIFiles(raw interface{}) ([]string, error) {
	if s, ok := raw.(string); ok {
		var files []string
		for _, f := range strings.Split(s, ",") {
			if f = strings.TrimSpace(f); f != "" {
				files = append(files, f)
			}
		}
		return files, nil
	}

	files, err := cast.ToStringSliceE(raw)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidConfig, "%s: %s", KeyABIFiles, err)
	}
	return files, nil
}
