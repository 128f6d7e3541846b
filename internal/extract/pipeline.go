// Package extract orchestrates the document extraction pipeline:
// registry match, template load, page rendering, a single model call,
// and JSON parsing of the response.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pradyten/pdf-extractor/internal/providers"
	"github.com/pradyten/pdf-extractor/internal/registry"
	"github.com/pradyten/pdf-extractor/internal/render"
)

// Options configure a Pipeline.
type Options struct {
	// Model is the model alias for extraction ("default" or empty uses
	// DefaultModel).
	Model string
	// DefaultModel is what the "default" alias resolves to.
	DefaultModel string
	// MaxPages bounds how many pages are rendered (0 = render.DefaultMaxPages).
	MaxPages int
	// Temperature for the model call.
	Temperature float64
	// ValidateOutput enables JSON Schema validation of the result when the
	// selected template carries a "$schema" key. Off by default: template
	// conformance is explicitly unverified.
	ValidateOutput bool
	// Logger for progress; slog.Default() if nil.
	Logger *slog.Logger
}

// Result is the outcome of one pipeline run.
type Result struct {
	DocumentType string          `json:"document_type"`
	Keyword      string          `json:"keyword"`
	TemplateFile string          `json:"template_file"`
	Fields       json.RawMessage `json:"fields"`
	Pages        int             `json:"pages"`
	Model        string          `json:"model"`
	Provider     string          `json:"provider"`
	RequestID    string          `json:"request_id"`
	TotalTokens  int             `json:"total_tokens,omitempty"`
}

// Pipeline runs document extraction. It is stateless across runs: the
// registry and templates are loaded once at construction and never mutated,
// and each run makes at most one model call with no caching or persistence.
type Pipeline struct {
	registry  *registry.Registry
	templates *registry.Store
	renderer  render.Renderer
	client    providers.LLMClient
	opts      Options
	logger    *slog.Logger
}

// New creates a pipeline.
func New(reg *registry.Registry, store *registry.Store, renderer render.Renderer, client providers.LLMClient, opts Options) *Pipeline {
	if opts.MaxPages <= 0 {
		opts.MaxPages = render.DefaultMaxPages
	}
	if opts.DefaultModel == "" {
		opts.DefaultModel = providers.OpenAIDefaultModel
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Pipeline{
		registry:  reg,
		templates: store,
		renderer:  renderer,
		client:    client,
		opts:      opts,
		logger:    logger,
	}
}

// Registry returns the pipeline's template registry.
func (p *Pipeline) Registry() *registry.Registry {
	return p.registry
}

// Run extracts structured JSON from the PDF at pdfPath. Template selection
// uses the file's basename.
func (p *Pipeline) Run(ctx context.Context, pdfPath string) (*Result, error) {
	return p.run(ctx, pdfPath, filepath.Base(pdfPath), "")
}

// RunWithModel is Run with a per-invocation model alias override.
func (p *Pipeline) RunWithModel(ctx context.Context, pdfPath, modelAlias string) (*Result, error) {
	return p.run(ctx, pdfPath, filepath.Base(pdfPath), modelAlias)
}

// RunBytes extracts from in-memory PDF data, selecting the template from
// filename. The renderer needs a file on disk, so the bytes are staged in a
// temp file that is removed before returning.
func (p *Pipeline) RunBytes(ctx context.Context, pdfData []byte, filename, modelAlias string) (*Result, error) {
	tmp, err := os.CreateTemp("", "extractor-upload-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to stage PDF: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(pdfData); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to stage PDF: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to stage PDF: %w", err)
	}

	return p.run(ctx, tmp.Name(), filename, modelAlias)
}

func (p *Pipeline) run(ctx context.Context, pdfPath, filename, modelAlias string) (*Result, error) {
	requestID := uuid.New().String()
	log := p.logger.With("request_id", requestID, "file", filename)

	// Resolve the model alias before doing any work so a bad alias fails fast.
	if modelAlias == "" {
		modelAlias = p.opts.Model
	}
	model, err := providers.ResolveModelAlias(modelAlias, p.opts.DefaultModel)
	if err != nil {
		return nil, err
	}

	entry, err := p.registry.Match(filename)
	if err != nil {
		return nil, err
	}
	log.Info("selected template", "document_type", entry.DocumentType, "keyword", entry.Keyword)

	template, err := p.templates.LoadForEntry(entry)
	if err != nil {
		return nil, err
	}

	images, err := p.renderer.RenderPages(ctx, pdfPath, p.opts.MaxPages)
	if err != nil {
		return nil, err
	}
	log.Info("rendered pages", "count", len(images))

	prompt, err := BuildPrompt(entry.DocumentType, template)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Extract(ctx, &providers.Request{
		System:      SystemPrompt,
		Prompt:      prompt,
		Images:      images,
		Model:       model,
		Temperature: p.opts.Temperature,
		RequestID:   requestID,
	})
	if err != nil {
		return nil, &ExtractionError{RequestID: requestID, Err: err}
	}

	fields, err := providers.ParseJSONOutput(resp.Content)
	if err != nil {
		return nil, &ExtractionError{RequestID: requestID, RawResponse: resp.Content, Err: err}
	}

	if p.opts.ValidateOutput {
		if schemaRaw := schemaFromTemplate(template); schemaRaw != nil {
			if err := providers.ValidateAgainstSchema(schemaRaw, fields); err != nil {
				return nil, &ExtractionError{RequestID: requestID, RawResponse: resp.Content, Err: err}
			}
		}
	}

	log.Info("extraction complete", "model", resp.ModelUsed, "tokens", resp.TotalTokens)

	return &Result{
		DocumentType: entry.DocumentType,
		Keyword:      entry.Keyword,
		TemplateFile: entry.TemplateFile,
		Fields:       fields,
		Pages:        len(images),
		Model:        resp.ModelUsed,
		Provider:     resp.Provider,
		RequestID:    requestID,
		TotalTokens:  resp.TotalTokens,
	}, nil
}

// schemaFromTemplate returns the template itself when it declares "$schema",
// meaning it is an actual JSON Schema rather than an example structure.
func schemaFromTemplate(template json.RawMessage) json.RawMessage {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(template, &probe); err != nil {
		return nil
	}
	if _, ok := probe["$schema"]; ok {
		return template
	}
	return nil
}
