package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cosmos/abidecoder/loader"
	"github.com/cosmos/abidecoder/registry"
	"github.com/cosmos/abidecoder/signature"
)

// NewSignatureCmd prints the signature and key of every named entry of an ABI
// file, the same keys the registry indexes.
func NewSignatureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signature ABI_FILE",
		Short: "Print the signature and selector or topic of every ABI entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := loader.ReadABIFile(args[0])
			if err != nil {
				return err
			}
			entries, err := registry.ParseEntries(bz)
			if err != nil {
				return err
			}

			computer := appFromCmd(cmd).registry.Computer()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, entry := range entries {
				if entry.Name == "" {
					continue
				}
				key, ok := computer.Key(entry)
				if !ok {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Kind(), signature.String(entry), key)
			}
			return w.Flush()
		},
	}
}
