package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notifyhub/apprise-node/internal/credential"
	"github.com/notifyhub/apprise-node/internal/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test that the Apprise instance is reachable",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cred := domain.Credential{Domain: cfg.AppriseDomain}
		if err := credential.NewTester(nil).Test(cmd.Context(), cred); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is reachable\n", cred.BaseURL())
		return nil
	},
}
