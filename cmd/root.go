package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/postmcp/config"
	"github.com/postmcp/functions"
	"github.com/postmcp/logger"
	"github.com/postmcp/postman"
)

const (
	serverName    = "postmcp"
	serverVersion = "0.1.0"
)

var (
	cfgfile string

	rootCmd = &cobra.Command{
		Use:           "postmcp",
		Short:         "Postman collections and environments as callable functions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgfile, "config", "", "config file (default is $HOME/.postmcp.yaml)")
	rootCmd.PersistentFlags().String("postman-base-url", "", "Postman API base URL")
	cobra.CheckErr(viper.BindPFlag(config.KeyPostmanBaseURL, rootCmd.PersistentFlags().Lookup("postman-base-url")))
	rootCmd.PersistentFlags().Duration("dispatch-timeout", 0, "deadline for a single function call (0 disables)")
	cobra.CheckErr(viper.BindPFlag(config.KeyDispatchTimeout, rootCmd.PersistentFlags().Lookup("dispatch-timeout")))
}

func initConfig() {
	cobra.CheckErr(config.Init(viper.GetViper(), cfgfile))
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(os.Stderr, "Using config file: %v\n", used)
	}
}

// app is what every command that dispatches calls needs.
type app struct {
	cfg        *config.Config
	log        *logger.Logger
	dispatcher *functions.Dispatcher
}

// build wires the remote client, the registry and the dispatcher. A missing
// API key is fatal here.
func build(name string) (*app, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	log := logger.NewLogger(name, uuid.NewString())

	pcfg, err := cfg.Postman()
	if err != nil {
		return nil, err
	}
	client, err := postman.New(pcfg)
	if err != nil {
		return nil, err
	}
	registry, err := functions.NewPostmanRegistry(client)
	if err != nil {
		return nil, err
	}
	log.Debug("catalog ready", "functions", registry.Len(), "postman", client.BaseURL())

	d := functions.NewDispatcher(registry,
		functions.WithTimeout(cfg.DispatchTimeout),
		functions.WithLogger(log.Named("dispatcher")),
	)
	return &app{cfg: cfg, log: log, dispatcher: d}, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
