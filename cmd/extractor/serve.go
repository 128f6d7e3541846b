package main

import (
	"github.com/spf13/cobra"

	"github.com/pradyten/pdf-extractor/internal/config"
	"github.com/pradyten/pdf-extractor/internal/providers"
	"github.com/pradyten/pdf-extractor/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the extractor server",
	Long: `Start the extractor HTTP server.

The server hosts the web UI and the extraction API on a single port.
Changes to the config file are picked up without a restart.

The server provides:
  - /              - Web UI for uploading PDFs and viewing results
  - /health        - Basic server health check
  - /api/extract   - Upload a PDF, get extracted JSON back
  - /api/templates - List registered document types

Examples:
  extractor serve                    # Start on default port 8501
  extractor serve --port 3000        # Start on custom port
  extractor serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := newLogger()

		mgr, err := loadConfig()
		if err != nil {
			return err
		}
		cfg := mgr.Get()

		pipeline, err := buildPipeline(cfg, logger)
		if err != nil {
			return err
		}

		host := cfg.Server.Host
		port := cfg.Server.Port
		if cmd.Flags().Changed("host") {
			host = serveHost
		}
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			Pipeline:      pipeline,
			SamplesDir:    cfg.Server.SamplesDir,
			DefaultModel:  providers.OpenAIDefaultModel,
			ConfigManager: mgr,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Rebuild the pipeline when the config file changes.
		mgr.OnChange(func(newCfg *config.Config) {
			p, err := buildPipeline(newCfg, logger)
			if err != nil {
				logger.Error("config reload failed", "error", err)
				return
			}
			srv.Reload(p, newCfg.Server.SamplesDir)
			logger.Info("configuration reloaded")
		})
		mgr.WatchConfig()

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8501", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
