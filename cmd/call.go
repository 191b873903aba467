package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/postmcp/functions"
)

var (
	callCmd = &cobra.Command{
		Use:   "call <function> [name=value ...]",
		Short: "invoke a single function and print the response",
		Long: `Invoke a single function and print its response envelope.

Values that parse as JSON are passed as JSON, anything else as a string:

  postmcp call mcp__get_collection collectionId=1234
  postmcp call mcp__create_environment name=dev 'variables=[{"key":"host","value":"localhost"}]'`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCallCmd,
	}
)

func init() {
	rootCmd.AddCommand(callCmd)
}

func runCallCmd(cmd *cobra.Command, args []string) error {
	params, err := parseParameters(args[1:])
	if err != nil {
		return err
	}
	rt, err := build("call")
	if err != nil {
		return err
	}

	resp := rt.dispatcher.Dispatch(cmd.Context(), functions.NewCall(args[0], params...))
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return err
	}
	if !resp.OK() {
		return errors.New(resp.Error)
	}
	return nil
}

// parseParameters turns name=value pairs into call parameters, keeping their
// order so that repeated names resolve last-wins.
func parseParameters(pairs []string) ([]functions.Parameter, error) {
	params := make([]functions.Parameter, 0, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected name=value", pair)
		}
		var value any = raw
		if json.Valid([]byte(raw)) {
			dec := json.NewDecoder(strings.NewReader(raw))
			dec.UseNumber()
			if err := dec.Decode(&value); err != nil {
				value = raw
			}
		}
		params = append(params, functions.P(name, value))
	}
	return params, nil
}
