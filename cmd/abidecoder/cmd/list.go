package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cosmos/abidecoder/signature"
)

// NewListCmd prints the registry index.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the selectors and topics of the loaded ABIs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			index := appFromCmd(cmd).registry.MethodIDs()

			keys := make([]string, 0, len(index))
			for key := range index {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, key := range keys {
				entry := index[key]
				fmt.Fprintf(w, "%s\t%s\t%s\n", key, entry.Kind(), signature.String(entry))
			}
			return w.Flush()
		},
	}
}
