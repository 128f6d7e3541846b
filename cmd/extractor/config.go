package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pradyten/pdf-extractor/internal/api"
	"github.com/pradyten/pdf-extractor/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Long: `Write a config file populated with defaults.

The file documents every setting. Edit it, or rely on the
OPENAI_API_KEY and EXTRACTOR_MODEL_ALIAS environment variables.

Examples:
  extractor config init                # writes ./config.yaml
  extractor config init ~/.pdf-extractor/config.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "config.yaml"
		if len(args) > 0 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, refusing to overwrite", path)
		}

		if err := config.WriteDefault(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := loadConfig()
		if err != nil {
			return err
		}

		// Do not leak the key into terminal scrollback.
		cfg := *mgr.Get()
		if cfg.APIKey() != "" {
			cfg.Provider.APIKey = "(set)"
		}

		return api.Output(&cfg)
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
