package main

import (
	"fmt"
	"os"

	"github.com/cosmos/abidecoder/cmd/abidecoder/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
