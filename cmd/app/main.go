package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weddy/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "weddy",
	Short: "Wedding venue and vendor discovery service",
	Long:  "Guides couples from a category to a search query, enriches hits with maps and review summaries, and keeps the group's picks.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, searchCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
