package cmd

import (
	"context"
	"io"
	"log/slog"

	ethlog "github.com/ethereum/go-ethereum/log"
	"github.com/rs/zerolog"

	"github.com/cosmos/abidecoder/config"
	"github.com/cosmos/abidecoder/types"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
)

// NewLogger builds the CLI logger writing to w.
func NewLogger(w io.Writer, cfg config.Config) (log.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidConfig, "invalid log level %q", cfg.LogLevel)
	}

	opts := []log.Option{log.LevelOption(level)}
	if cfg.LogFormat == config.LogFormatJSON {
		opts = append(opts, log.OutputJSONOption())
	} else {
		opts = append(opts, log.ColorOption(false))
	}
	return log.NewLogger(w, opts...), nil
}

// slogAdapter forwards slog records to a cosmos logger.
type slogAdapter struct {
	logger log.Logger
	level  slog.Level
}

// SetEthLogger routes go-ethereum's logger through logger.
func SetEthLogger(logger log.Logger, levelStr string) {
	handler := newSlogAdapter(logger, levelStr)
	ethlog.SetDefault(ethlog.NewLogger(handler))
}

func newSlogAdapter(logger log.Logger, levelStr string) *slogAdapter {
	a := &slogAdapter{
		logger: logger.With("module", "geth"),
		level:  slog.LevelInfo,
	}
	// zerolog's "trace" has no slog counterpart, leave it at info
	_ = a.level.UnmarshalText([]byte(levelStr))
	return a
}

func (a *slogAdapter) Handle(_ context.Context, r slog.Record) error {
	attrs := make([]any, 0, 2*r.NumAttrs())
	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr.Key, attr.Value.Any())
		return true
	})

	switch {
	case r.Level < slog.LevelInfo:
		a.logger.Debug(r.Message, attrs...)
	case r.Level < slog.LevelWarn:
		a.logger.Info(r.Message, attrs...)
	case r.Level < slog.LevelError:
		a.logger.Warn(r.Message, attrs...)
	default:
		a.logger.Error(r.Message, attrs...)
	}
	return nil
}

func (a *slogAdapter) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= a.level
}

func (a *slogAdapter) WithAttrs(attrs []slog.Attr) slog.Handler {
	flatten := make([]any, 0, len(attrs)*2)
	for _, attr := range attrs {
		flatten = append(flatten, attr.Key, attr.Value.Any())
	}
	return &slogAdapter{
		logger: a.logger.With(flatten...),
		level:  a.level,
	}
}

func (a *slogAdapter) WithGroup(group string) slog.Handler {
	return &slogAdapter{
		logger: a.logger.With("group", group),
		level:  a.level,
	}
}
