package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/postmcp/auth"
	"github.com/postmcp/config"
)

var (
	tokenSubject string
	tokenTTL     = auth.DefaultTokenTTL

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "issue a bearer token signed with the shared secret",
		Args:  cobra.NoArgs,
		RunE:  runTokenCmd,
	}
)

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "postmcp-client", "token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", auth.DefaultTokenTTL, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}

func runTokenCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	secret := auth.Secret(cfg.SharedSecret)
	if !secret.Enabled() {
		return errors.New("a shared secret is required to sign tokens")
	}
	tok, err := auth.NewT(secret).WithTTL(tokenTTL).Create(tokenSubject)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
	return err
}
