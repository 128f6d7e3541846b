package extract

import (
	"fmt"

	"github.com/pradyten/pdf-extractor/internal/registry"
	"github.com/pradyten/pdf-extractor/internal/render"
)

// Sentinel errors re-exported so callers can classify failures with a
// single import. The taxonomy:
//   - ErrNoTemplate: filename keyword not found in the registry
//   - template load errors: registry.ErrTemplateNotFound / invalid JSON
//   - ErrRenderFailed: the PDF could not be rasterized
//   - ExtractionError: the model call failed or returned non-JSON output
var (
	ErrNoTemplate   = registry.ErrNoTemplate
	ErrRenderFailed = render.ErrRenderFailed
)

// ExtractionError is returned when the model call errors or its output
// cannot be parsed as JSON. RawResponse retains the model's text for
// debugging; it is empty when the call itself failed.
type ExtractionError struct {
	RequestID   string
	RawResponse string
	Err         error
}

func (e *ExtractionError) Error() string {
	if e.RawResponse != "" {
		snippet := e.RawResponse
		if len(snippet) > 500 {
			snippet = snippet[:500]
		}
		return fmt.Sprintf("extraction failed: %v (first %d characters of response: %q)", e.Err, len(snippet), snippet)
	}
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
