package main

import (
	"github.com/pradyten/pdf-extractor/internal/api"
	"github.com/pradyten/pdf-extractor/internal/providers"
	"github.com/pradyten/pdf-extractor/internal/server/endpoints"
)

var serverURL string

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	reg := api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{DefaultModel: providers.OpenAIDefaultModel}) {
		reg.Register(ep)
	}

	apiCmd := reg.BuildCommands(getServerURL)

	// --server is persistent so all subcommands inherit it
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8501", "Server URL",
	)

	rootCmd.AddCommand(apiCmd)
}
