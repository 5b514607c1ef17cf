package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/abidecoder/config"
	"github.com/cosmos/abidecoder/types"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       config.Config
		expOutput []string
		expHidden string
		expErr    error
	}{
		{
			name:      "json at info",
			cfg:       config.Config{LogLevel: "info", LogFormat: config.LogFormatJSON},
			expOutput: []string{`"level":"info"`, `"message":"shown"`, `"keys":2`},
			expHidden: "hidden",
		},
		{
			name:      "plain at debug",
			cfg:       config.Config{LogLevel: "debug", LogFormat: config.LogFormatPlain},
			expOutput: []string{"shown", "hidden", "keys=2"},
		},
		{
			name:   "bad level",
			cfg:    config.Config{LogLevel: "loud", LogFormat: config.LogFormatPlain},
			expErr: types.ErrInvalidConfig,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(&buf, tc.cfg)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)

			logger.Info("shown", "keys", 2)
			logger.Debug("hidden")

			for _, s := range tc.expOutput {
				require.Contains(t, buf.String(), s)
			}
			if tc.expHidden != "" {
				require.NotContains(t, buf.String(), tc.expHidden)
			}
		})
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, config.Config{LogLevel: "debug", LogFormat: config.LogFormatJSON})
	require.NoError(t, err)

	handler := newSlogAdapter(logger, "warn")
	require.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
	require.True(t, handler.Enabled(context.Background(), slog.LevelWarn))
	require.True(t, handler.Enabled(context.Background(), slog.LevelError))

	record := slog.NewRecord(time.Now(), slog.LevelWarn, "abi warning", 0)
	record.AddAttrs(slog.String("selector", "a9059cbb"))
	require.NoError(t, handler.WithAttrs([]slog.Attr{slog.Int("n", 1)}).Handle(context.Background(), record))

	out := buf.String()
	require.Contains(t, out, `"level":"warn"`)
	require.Contains(t, out, `"module":"geth"`)
	require.Contains(t, out, `"selector":"a9059cbb"`)
	require.Contains(t, out, `"n":1`)

	// unknown levels fall back to info
	require.Equal(t, slog.LevelInfo, newSlogAdapter(logger, "trace").level)
}
