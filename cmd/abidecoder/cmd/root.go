package cmd

import (
	"context"
	"time"

	gometrics "github.com/hashicorp/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cosmos/abidecoder/config"
	"github.com/cosmos/abidecoder/decoder"
	"github.com/cosmos/abidecoder/loader"
	"github.com/cosmos/abidecoder/metrics"
	"github.com/cosmos/abidecoder/registry"

	"cosmossdk.io/log"
)

const (
	FlagABI       = "abi"
	FlagConfig    = "config"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagMetrics   = "metrics"
)

// flagKeys binds CLI flags to config keys.
var flagKeys = map[string]string{
	FlagABI:       config.KeyABIFiles,
	FlagLogLevel:  config.KeyLogLevel,
	FlagLogFormat: config.KeyLogFormat,
	FlagMetrics:   config.KeyMetrics,
}

type appKey struct{}

// app is the state shared by the subcommands of a single invocation.
type app struct {
	cfg      config.Config
	logger   log.Logger
	registry *registry.Registry
	decoder  *decoder.Decoder
	sink     *gometrics.InmemSink
}

// NewRootCmd creates the abidecoder root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abidecoder",
		Short: "Decode EVM call data and event logs against registered ABIs",
		Long: "Decode EVM call data and event logs against registered ABIs.\n\n" +
			"ABI files are JSON arrays, YAML documents or compiler artifacts with an abi field. " +
			"Every flag can also be set in a config file or through ABIDECODER_* environment variables.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			a := appFromCmd(cmd)
			if a.sink == nil {
				return nil
			}
			return metrics.WriteCounters(cmd.ErrOrStderr(), a.sink)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringSlice(FlagABI, nil, "ABI file to register, may be repeated")
	pf.String(FlagConfig, "", "config file (yaml, json or toml)")
	pf.String(FlagLogLevel, config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	pf.String(FlagLogFormat, config.DefaultLogFormat, "log format (plain or json)")
	pf.Bool(FlagMetrics, false, "print decode counters to stderr on exit")

	cmd.AddCommand(
		NewSignatureCmd(),
		NewDecodeCallCmd(),
		NewDecodeRevertCmd(),
		NewDecodeLogsCmd(),
		NewListCmd(),
	)
	return cmd
}

func newApp(cmd *cobra.Command) (*app, error) {
	configFile, err := cmd.Flags().GetString(FlagConfig)
	if err != nil {
		return nil, err
	}

	v, err := config.NewViper(configFile)
	if err != nil {
		return nil, err
	}
	if err := bindFlags(cmd, v); err != nil {
		return nil, err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger, err := NewLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, err
	}
	SetEthLogger(logger, cfg.LogLevel)

	a := &app{
		cfg:      cfg,
		logger:   logger,
		registry: registry.New(registry.WithLogger(logger)),
	}

	opts := []decoder.Option{decoder.WithLogger(logger)}
	if cfg.Metrics {
		m, sink, err := metrics.NewInmem(10*time.Second, time.Minute)
		if err != nil {
			return nil, err
		}
		a.sink = sink
		opts = append(opts, decoder.WithMetrics(m))
	}
	a.decoder = decoder.New(a.registry, opts...)

	if err := loader.LoadABIFiles(a.registry, cfg.ABIFiles...); err != nil {
		return nil, err
	}
	logger.Debug("registry loaded", "files", len(cfg.ABIFiles), "keys", a.registry.Len())
	return a, nil
}

// bindFlags lets flags set on the command line override config file and
// environment values.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for flagName, key := range flagKeys {
		f := cmd.Flags().Lookup(flagName)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

func appFromCmd(cmd *cobra.Command) *app {
	a, ok := cmd.Context().Value(appKey{}).(*app)
	if !ok {
		panic("abidecoder: command run without application context")
	}
	return a
}
