package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/postmcp/mcp"
	"github.com/postmcp/stdio"
)

var (
	stdioCmd = &cobra.Command{
		Use:   "stdio",
		Short: "serve MCP over stdin/stdout",
		RunE:  runStdioCmd,
	}
)

func init() {
	rootCmd.AddCommand(stdioCmd)
}

// stdout carries protocol traffic only; logs go to stderr.
func runStdioCmd(cmd *cobra.Command, args []string) error {
	rt, err := build("stdio")
	if err != nil {
		return err
	}
	p := mcp.NewToolServer(rt.dispatcher, mcp.NewServerInfo(serverName, serverVersion), rt.log.Named("mcp"))
	rt.log.Info("serving on stdio")
	return stdio.Serve(cmd.Context(), os.Stdin, os.Stdout, p.HandleMessage)
}
