package endpoints

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pradyten/pdf-extractor/internal/api"
	"github.com/pradyten/pdf-extractor/internal/svcctx"
)

// SamplesResponse lists demo PDFs available to the UI.
type SamplesResponse struct {
	Samples []string `json:"samples"`
}

// SamplesEndpoint handles GET /api/samples.
type SamplesEndpoint struct{}

var _ api.Endpoint = (*SamplesEndpoint)(nil)

func (e *SamplesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/samples", e.handler
}

func (e *SamplesEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary	List demo PDFs
//	@Tags		samples
//	@Produce	json
//	@Success	200	{object}	SamplesResponse
//	@Router		/api/samples [get]
func (e *SamplesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := SamplesResponse{Samples: []string{}}

	dir := svcctx.SamplesDirFrom(r.Context())
	if dir == "" {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// A missing samples directory is not an error; the UI just shows none.
		writeJSON(w, http.StatusOK, resp)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			resp.Samples = append(resp.Samples, entry.Name())
		}
	}
	sort.Strings(resp.Samples)

	writeJSON(w, http.StatusOK, resp)
}

func (e *SamplesEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List demo PDFs available on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp SamplesResponse
			if err := client.Get(cmd.Context(), "/api/samples", &resp); err != nil {
				return err
			}
			return api.Output(resp.Samples)
		},
	}
}

// SampleFileEndpoint handles GET /api/samples/{name}, serving a demo PDF
// for the UI preview.
type SampleFileEndpoint struct{}

var _ api.Endpoint = (*SampleFileEndpoint)(nil)

func (e *SampleFileEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/samples/{name}", e.handler
}

func (e *SampleFileEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary	Download a demo PDF
//	@Tags		samples
//	@Produce	application/pdf
//	@Param		name	path	string	true	"Sample file name"
//	@Success	200
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/samples/{name} [get]
func (e *SampleFileEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	dir := svcctx.SamplesDirFrom(r.Context())
	if dir == "" {
		writeError(w, http.StatusNotFound, "no samples directory configured")
		return
	}

	name := r.PathValue("name")
	// Plain file names only; reject traversal attempts.
	if name == "" || filepath.Base(name) != name || !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		writeError(w, http.StatusNotFound, "sample not found")
		return
	}

	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		writeError(w, http.StatusNotFound, "sample not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}

func (e *SampleFileEndpoint) Command(_ func() string) *cobra.Command {
	return nil // No CLI command; samples are for the UI preview
}
