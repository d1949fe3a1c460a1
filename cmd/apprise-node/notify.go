package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notifyhub/apprise-node/internal/domain"
	"github.com/notifyhub/apprise-node/internal/processor"
	"github.com/notifyhub/apprise-node/internal/provider"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send a single notification",
	Example: `  apprise-node notify --body "Disk full" --type warning --urls "mailto://ops@example.com"
  apprise-node notify --body "Backup done" --key home-lab --tag admins`,
	RunE: runNotify,
}

func init() {
	f := notifyCmd.Flags()
	f.String("title", "", "notification title")
	f.String("body", domain.DefaultBody, "notification body")
	f.String("type", string(domain.NotifyInfo), "info, success, warning or failure")
	f.String("urls", "", "comma or space separated destination URLs")
	f.String("key", "", "persistent store key; implies --use-key")
	f.String("tag", "", "comma separated tags, used with --key")
}

// rawParamsFromFlags only sets the fields the user passed explicitly so that
// the usual resolution defaults apply to the rest.
func rawParamsFromFlags(cmd *cobra.Command) domain.RawParams {
	var raw domain.RawParams
	str := func(name string) *string {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		v, _ := cmd.Flags().GetString(name)
		return &v
	}
	raw.Title = str("title")
	raw.Body = str("body")
	raw.Type = str("type")
	raw.URLs = str("urls")
	raw.Key = str("key")
	raw.Tag = str("tag")
	if raw.Key != nil {
		useKey := true
		raw.UseKey = &useKey
	}
	return raw
}

func runNotify(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	proc := processor.New(provider.NewAppriseProvider(cfg.AppriseTimeout), logger, processor.MetricHooks{})

	cred := domain.Credential{Domain: cfg.AppriseDomain}
	items := []domain.Item{{Index: 0}}
	if _, err := proc.Execute(cmd.Context(), cred, rawParamsFromFlags(cmd), items, domain.PolicyFailFast); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "notification sent")
	return nil
}
