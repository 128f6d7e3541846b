package endpoints

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pradyten/pdf-extractor/internal/api"
	"github.com/pradyten/pdf-extractor/internal/providers"
	"github.com/pradyten/pdf-extractor/internal/registry"
	"github.com/pradyten/pdf-extractor/internal/svcctx"
)

// TemplatesResponse lists registry entries in match order.
type TemplatesResponse struct {
	Templates []registry.Entry `json:"templates"`
}

// TemplatesEndpoint handles GET /api/templates.
type TemplatesEndpoint struct{}

var _ api.Endpoint = (*TemplatesEndpoint)(nil)

func (e *TemplatesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/templates", e.handler
}

func (e *TemplatesEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary	List registered extraction templates
//	@Tags		templates
//	@Produce	json
//	@Success	200	{object}	TemplatesResponse
//	@Router		/api/templates [get]
func (e *TemplatesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	reg := svcctx.RegistryFrom(r.Context())
	if reg == nil {
		writeError(w, http.StatusServiceUnavailable, "registry not initialized")
		return
	}
	writeJSON(w, http.StatusOK, TemplatesResponse{Templates: reg.Entries()})
}

func (e *TemplatesEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List registered extraction templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp TemplatesResponse
			if err := client.Get(cmd.Context(), "/api/templates", &resp); err != nil {
				return err
			}
			return api.Output(resp.Templates)
		},
	}
}

// ModelsResponse lists the accepted model aliases.
type ModelsResponse struct {
	Models  []string `json:"models"`
	Default string   `json:"default"`
}

// ModelsEndpoint handles GET /api/models.
type ModelsEndpoint struct {
	// DefaultModel is what the "default" alias resolves to.
	DefaultModel string
}

var _ api.Endpoint = (*ModelsEndpoint)(nil)

func (e *ModelsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/models", e.handler
}

func (e *ModelsEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary	List accepted model aliases
//	@Tags		templates
//	@Produce	json
//	@Success	200	{object}	ModelsResponse
//	@Router		/api/models [get]
func (e *ModelsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	def := e.DefaultModel
	if def == "" {
		def = providers.OpenAIDefaultModel
	}
	writeJSON(w, http.StatusOK, ModelsResponse{Models: providers.AllowedModels, Default: def})
}

func (e *ModelsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List accepted model aliases",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ModelsResponse
			if err := client.Get(cmd.Context(), "/api/models", &resp); err != nil {
				return err
			}
			for _, m := range resp.Models {
				if m == resp.Default {
					fmt.Printf("%s (default)\n", m)
					continue
				}
				fmt.Println(m)
			}
			return nil
		},
	}
}
