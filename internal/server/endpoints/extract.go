package endpoints

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pradyten/pdf-extractor/internal/api"
	"github.com/pradyten/pdf-extractor/internal/extract"
	"github.com/pradyten/pdf-extractor/internal/registry"
	"github.com/pradyten/pdf-extractor/internal/svcctx"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing.
const maxUploadMemory = 50 << 20 // 50MB

// ExtractEndpoint handles POST /api/extract with a multipart PDF upload.
type ExtractEndpoint struct{}

var _ api.Endpoint = (*ExtractEndpoint)(nil)

func (e *ExtractEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/extract", e.handler
}

func (e *ExtractEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Extract structured JSON from a PDF
//	@Description	Upload a PDF; the template is selected from the filename keyword
//	@Tags			extract
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"PDF to extract"
//	@Param			model	formData	string	false	"Model alias (default uses the configured model)"
//	@Success		200	{object}	extract.Result
//	@Failure		400	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/api/extract [post]
func (e *ExtractEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	pipeline := svcctx.PipelineFrom(r.Context())
	if pipeline == nil {
		writeError(w, http.StatusServiceUnavailable, "pipeline not initialized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file %s is not a PDF", header.Filename))
		return
	}

	pdfData, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read upload: %v", err))
		return
	}

	model := r.FormValue("model")

	result, err := pipeline.RunBytes(r.Context(), pdfData, header.Filename, model)
	if err != nil {
		status, category := classifyError(err)
		writeCategorizedError(w, status, category, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// classifyError maps pipeline failures onto HTTP statuses and the error
// taxonomy shown to the user.
func classifyError(err error) (status int, category string) {
	var extractErr *extract.ExtractionError
	switch {
	case errors.Is(err, extract.ErrNoTemplate):
		return http.StatusUnprocessableEntity, "no_matching_template"
	case errors.Is(err, registry.ErrTemplateNotFound):
		return http.StatusInternalServerError, "template_unreadable"
	case errors.Is(err, extract.ErrRenderFailed):
		return http.StatusBadRequest, "render_failure"
	case errors.As(err, &extractErr):
		return http.StatusBadGateway, "extraction_failure"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func (e *ExtractEndpoint) Command(getServerURL func() string) *cobra.Command {
	var model string
	cmd := &cobra.Command{
		Use:   "extract <pdf-path>",
		Short: "Extract a PDF through the running server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var result extract.Result
			fields := map[string]string{"model": model}
			if err := client.PostFile(cmd.Context(), "/api/extract", args[0], fields, &result); err != nil {
				return err
			}
			return api.Output(result)
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "Model alias override")
	return cmd
}
