package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pradyten/pdf-extractor/internal/api"
	"github.com/pradyten/pdf-extractor/internal/config"
	"github.com/pradyten/pdf-extractor/internal/extract"
	"github.com/pradyten/pdf-extractor/internal/providers"
	"github.com/pradyten/pdf-extractor/internal/registry"
	"github.com/pradyten/pdf-extractor/internal/render"
	"github.com/pradyten/pdf-extractor/version"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "extractor",
	Short: "Structured data extraction from PDF documents using vision models",
	Long: `Extractor pulls structured JSON out of PDF documents.

A document's type is inferred from keywords in its filename, the matching
JSON template defines the fields to fill, and a vision model reads the
rendered pages and returns the completed template.

Supported document types include visa petitions, passports, transcripts,
employment letters, tax returns and resumes. Requires the OPENAI_API_KEY
environment variable and the poppler pdftoppm binary.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.pdf-extractor/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "json", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}

// loadConfig builds the configuration manager honoring the --config flag.
func loadConfig() (*config.Manager, error) {
	return config.NewManager(cfgFile)
}

// newLogger returns the process logger used by CLI commands.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// buildPipeline assembles the extraction pipeline from configuration.
func buildPipeline(cfg *config.Config, logger *slog.Logger) (*extract.Pipeline, error) {
	reg, err := registry.LoadManifest(cfg.Templates.Dir)
	if err != nil {
		return nil, err
	}

	store := registry.NewStore(cfg.Templates.Dir)
	renderer := render.NewPopplerRenderer()
	client := providers.NewOpenAIClient(cfg.ToOpenAIConfig())

	return extract.New(reg, store, renderer, client, extract.Options{
		Model:          cfg.Extract.Model,
		DefaultModel:   client.DefaultModel(),
		MaxPages:       cfg.Extract.MaxPages,
		Temperature:    cfg.Extract.Temperature,
		ValidateOutput: cfg.Extract.ValidateOutput,
		Logger:         logger,
	}), nil
}
