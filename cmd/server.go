package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/postmcp/auth"
	"github.com/postmcp/config"
	"github.com/postmcp/mcp"
	"github.com/postmcp/server"
)

var (
	serverCmd = &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP server",
		RunE:  runServerCmd,
	}
)

func init() {
	serverCmd.Flags().String("addr", server.DefaultAddr, "listen address")
	cobra.CheckErr(viper.BindPFlag(config.KeyAddr, serverCmd.Flags().Lookup("addr")))
	rootCmd.AddCommand(serverCmd)
}

func runServerCmd(cmd *cobra.Command, args []string) error {
	rt, err := build("server")
	if err != nil {
		return err
	}
	secret := auth.Secret(rt.cfg.SharedSecret)
	if !secret.Enabled() {
		rt.log.Warn("no shared secret configured, HTTP endpoints are unauthenticated")
	}

	routes := server.SetupRoutes(server.Deps{
		Dispatcher: rt.dispatcher,
		Protocol:   mcp.NewToolServer(rt.dispatcher, mcp.NewServerInfo(serverName, serverVersion), rt.log.Named("mcp")),
		Secret:     secret,
		Log:        rt.log,
	})
	s := server.NewServer(server.ServerConfigs(rt.cfg.Addr), routes, rt.log)
	return s.Run(cmd.Context())
}
