package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/cosmos/abidecoder/codec"
	"github.com/cosmos/abidecoder/loader"
	"github.com/cosmos/abidecoder/trace"
	"github.com/cosmos/abidecoder/types"

	errorsmod "cosmossdk.io/errors"
)

var tracer = trace.Tracer("cmd")

// FileEvents is the decoded content of one log file.
type FileEvents struct {
	File   string                `json:"file"`
	Events []*types.DecodedEvent `json:"events"`
}

// NewDecodeCallCmd decodes a single call data string.
func NewDecodeCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "decode-call CALL_DATA",
		Short:   "Decode 0x-prefixed function call data",
		Example: "abidecoder decode-call --abi erc20.json 0xa9059cbb...",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, span := tracer.Start(cmd.Context(), "DecodeCall")
			defer func() { trace.EndSpanErr(span, err) }()

			res, err := appFromCmd(cmd).decoder.DecodeMethod(args[0])
			if err != nil {
				return err
			}
			span.SetAttributes(attribute.Bool("matched", res != nil))
			if res == nil {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "unknown method")
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

// NewDecodeRevertCmd decodes Error(string) and Panic(uint256) revert data.
func NewDecodeRevertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-revert REVERT_DATA",
		Short: "Decode 0x-prefixed Error(string) or Panic(uint256) revert data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := hexutil.Decode(args[0])
			if err != nil {
				return errorsmod.Wrapf(types.ErrCodec, "invalid revert data: %s", err)
			}
			reason, err := codec.DecodeRevert(bz)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), reason)
			return err
		},
	}
}

// NewDecodeLogsCmd decodes log files. Each file holds a log array, a
// transaction receipt or a JSON-RPC response.
func NewDecodeLogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-logs LOG_FILE...",
		Short: "Decode event logs read from JSON files",
		Long: "Decode event logs read from JSON files. A file may contain a bare array of logs, " +
			"a transaction receipt, or an eth_getLogs / eth_getTransactionReceipt response. " +
			"Unknown events are printed as null.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromCmd(cmd)
			results := make([]FileEvents, len(args))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, path := range args {
				g.Go(func() (err error) {
					if err := ctx.Err(); err != nil {
						return err
					}
					_, span := tracer.Start(ctx, "DecodeLogFile", oteltrace.WithAttributes(attribute.String("file", path)))
					defer func() { trace.EndSpanErr(span, err) }()

					bz, err := os.ReadFile(path)
					if err != nil {
						return err
					}
					logs, err := loader.ParseLogs(bz)
					if err != nil {
						return errorsmod.Wrap(err, path)
					}
					events, err := a.decoder.DecodeLogs(logs)
					if err != nil {
						return errorsmod.Wrap(err, path)
					}
					span.SetAttributes(attribute.Int("logs", len(logs)), attribute.Int("events", len(events)))
					a.logger.Debug("decoded log file", "file", path, "logs", len(logs), "events", len(events))
					results[i] = FileEvents{File: path, Events: events}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), results)
		},
	}
}

func printJSON(w io.Writer, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bz))
	return err
}
