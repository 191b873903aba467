package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/postmcp/functions"
)

var (
	functionsCmd = &cobra.Command{
		Use:   "functions",
		Short: "print the function catalog as JSON",
		Args:  cobra.NoArgs,
		RunE:  runFunctionsCmd,
	}
)

func init() {
	rootCmd.AddCommand(functionsCmd)
}

func runFunctionsCmd(cmd *cobra.Command, args []string) error {
	// listing never invokes a handler, so no remote client is needed
	registry, err := functions.NewPostmanRegistry(nil)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(registry.List())
}
