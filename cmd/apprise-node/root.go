package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/notifyhub/apprise-node/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "apprise-node",
	Short: "Send notifications through an Apprise API instance",
	Long: "apprise-node forwards notifications to an Apprise API instance, one request per input item.\n" +
		"Run it as an HTTP node host with `serve`, or send a single notification with `notify`.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("domain", "", "Apprise API base URL (overrides APPRISE_DOMAIN)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadConfig reads the environment and applies the persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if d, _ := cmd.Flags().GetString("domain"); d != "" {
		cfg.AppriseDomain = d
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
