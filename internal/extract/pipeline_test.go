package extract

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pradyten/pdf-extractor/internal/providers"
	"github.com/pradyten/pdf-extractor/internal/registry"
	"github.com/pradyten/pdf-extractor/internal/render"
)

func newTestPipeline(client providers.LLMClient, renderer render.Renderer, opts Options) *Pipeline {
	return New(registry.New(), registry.NewStore(""), renderer, client, opts)
}

func TestPipelineRun(t *testing.T) {
	client := &providers.MockClient{ResponseText: `{"full_name": "Jane Doe", "email": "jane@example.com"}`}
	renderer := &render.MockRenderer{
		Pages: [][]byte{[]byte("page-1"), []byte("page-2")},
	}
	p := newTestPipeline(client, renderer, Options{})

	result, err := p.Run(context.Background(), "/tmp/resume.pdf")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.DocumentType != "Resume/CV" {
		t.Errorf("document type = %q, want Resume/CV", result.DocumentType)
	}
	if result.TemplateFile != "resume.json" {
		t.Errorf("template file = %q, want resume.json", result.TemplateFile)
	}
	if result.Pages != 2 {
		t.Errorf("pages = %d, want 2", result.Pages)
	}
	if result.RequestID == "" {
		t.Error("request ID not assigned")
	}

	var fields map[string]string
	if err := json.Unmarshal(result.Fields, &fields); err != nil {
		t.Fatalf("fields not valid JSON: %v", err)
	}
	if fields["full_name"] != "Jane Doe" {
		t.Errorf("full_name = %q, want Jane Doe", fields["full_name"])
	}
}

func TestPipelineSingleModelCall(t *testing.T) {
	client := providers.NewMockClient()
	renderer := render.NewMockRenderer()
	p := newTestPipeline(client, renderer, Options{})

	if _, err := p.Run(context.Background(), "passport.pdf"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if client.RequestCount() != 1 {
		t.Errorf("model calls = %d, want exactly 1", client.RequestCount())
	}
	if renderer.CallCount() != 1 {
		t.Errorf("render calls = %d, want exactly 1", renderer.CallCount())
	}
}

func TestPipelineRequestContents(t *testing.T) {
	client := providers.NewMockClient()
	renderer := &render.MockRenderer{Pages: [][]byte{[]byte("img")}}
	p := newTestPipeline(client, renderer, Options{Temperature: 0})

	if _, err := p.Run(context.Background(), "I129_case.pdf"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	req := client.LastRequest()
	if req == nil {
		t.Fatal("no request captured")
	}
	if req.System != SystemPrompt {
		t.Errorf("system prompt = %q", req.System)
	}
	if !strings.Contains(req.Prompt, "USCIS Form I-129 H-1B Petition") {
		t.Error("prompt missing document type from registry match")
	}
	if len(req.Images) != 1 {
		t.Errorf("images = %d, want 1", len(req.Images))
	}
	if req.Model != providers.OpenAIDefaultModel {
		t.Errorf("model = %q, want default %q", req.Model, providers.OpenAIDefaultModel)
	}
	if req.Temperature != 0 {
		t.Errorf("temperature = %v, want 0", req.Temperature)
	}
}

func TestPipelineNoMatchingTemplate(t *testing.T) {
	client := providers.NewMockClient()
	renderer := render.NewMockRenderer()
	p := newTestPipeline(client, renderer, Options{})

	_, err := p.Run(context.Background(), "unknown_doc.pdf")
	if !errors.Is(err, ErrNoTemplate) {
		t.Fatalf("error = %v, want ErrNoTemplate", err)
	}

	// Failure happens before any rendering or model work.
	if renderer.CallCount() != 0 {
		t.Errorf("render calls = %d, want 0", renderer.CallCount())
	}
	if client.RequestCount() != 0 {
		t.Errorf("model calls = %d, want 0", client.RequestCount())
	}
}

func TestPipelineBadModelAliasFailsFast(t *testing.T) {
	client := providers.NewMockClient()
	renderer := render.NewMockRenderer()
	p := newTestPipeline(client, renderer, Options{})

	_, err := p.RunWithModel(context.Background(), "resume.pdf", "not-a-model")
	if err == nil {
		t.Fatal("expected error for unknown model alias")
	}
	if renderer.CallCount() != 0 || client.RequestCount() != 0 {
		t.Error("alias validation should happen before rendering and model calls")
	}
}

func TestPipelineRenderFailure(t *testing.T) {
	client := providers.NewMockClient()
	renderer := &render.MockRenderer{ShouldFail: true}
	p := newTestPipeline(client, renderer, Options{})

	_, err := p.Run(context.Background(), "resume.pdf")
	if !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("error = %v, want ErrRenderFailed", err)
	}
	if client.RequestCount() != 0 {
		t.Error("model should not be called when rendering fails")
	}
}

func TestPipelineModelFailure(t *testing.T) {
	client := &providers.MockClient{ShouldFail: true}
	renderer := render.NewMockRenderer()
	p := newTestPipeline(client, renderer, Options{})

	_, err := p.Run(context.Background(), "resume.pdf")
	if err == nil {
		t.Fatal("expected error")
	}

	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("error = %T, want *ExtractionError", err)
	}
	if extErr.RequestID == "" {
		t.Error("extraction error missing request ID")
	}
	if client.RequestCount() != 1 {
		t.Errorf("model calls = %d, want exactly 1 (no retries)", client.RequestCount())
	}
}

func TestPipelineNonJSONResponse(t *testing.T) {
	raw := "I am sorry, I cannot read this document."
	client := &providers.MockClient{ResponseText: raw}
	renderer := render.NewMockRenderer()
	p := newTestPipeline(client, renderer, Options{})

	_, err := p.Run(context.Background(), "resume.pdf")
	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("error = %T, want *ExtractionError", err)
	}
	if extErr.RawResponse != raw {
		t.Errorf("raw response = %q, want original model output", extErr.RawResponse)
	}
}

func TestPipelineFencedResponseRecovered(t *testing.T) {
	client := &providers.MockClient{ResponseText: "```json\n{\"full_name\": \"Jane\"}\n```"}
	renderer := render.NewMockRenderer()
	p := newTestPipeline(client, renderer, Options{})

	result, err := p.Run(context.Background(), "resume.pdf")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	var fields map[string]string
	if err := json.Unmarshal(result.Fields, &fields); err != nil {
		t.Fatal(err)
	}
	if fields["full_name"] != "Jane" {
		t.Errorf("full_name = %q, want Jane", fields["full_name"])
	}
}

func TestPipelineRunBytes(t *testing.T) {
	client := providers.NewMockClient()
	renderer := render.NewMockRenderer()
	p := newTestPipeline(client, renderer, Options{})

	result, err := p.RunBytes(context.Background(), []byte("%PDF-1.4 fake"), "marriage_cert.pdf", "")
	if err != nil {
		t.Fatalf("RunBytes: %v", err)
	}
	if result.DocumentType != "Marriage Certificate" {
		t.Errorf("document type = %q, want Marriage Certificate", result.DocumentType)
	}
}

func TestPipelineValidateOutput(t *testing.T) {
	dir := t.TempDir()
	schema := `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"properties": {"full_name": {"type": "string"}},
		"required": ["full_name"]
	}`
	writeTemplate(t, dir, "resume.json", schema)

	renderer := render.NewMockRenderer()

	t.Run("conforming output passes", func(t *testing.T) {
		client := &providers.MockClient{ResponseText: `{"full_name": "Jane"}`}
		p := New(registry.New(), registry.NewStore(dir), renderer, client, Options{ValidateOutput: true})
		if _, err := p.Run(context.Background(), "resume.pdf"); err != nil {
			t.Fatalf("Run: %v", err)
		}
	})

	t.Run("nonconforming output fails", func(t *testing.T) {
		client := &providers.MockClient{ResponseText: `{"wrong_field": "x"}`}
		p := New(registry.New(), registry.NewStore(dir), renderer, client, Options{ValidateOutput: true})
		_, err := p.Run(context.Background(), "resume.pdf")
		var extErr *ExtractionError
		if !errors.As(err, &extErr) {
			t.Fatalf("error = %T, want *ExtractionError", err)
		}
	})

	t.Run("validation off by default", func(t *testing.T) {
		client := &providers.MockClient{ResponseText: `{"wrong_field": "x"}`}
		p := New(registry.New(), registry.NewStore(dir), renderer, client, Options{})
		if _, err := p.Run(context.Background(), "resume.pdf"); err != nil {
			t.Fatalf("Run: %v", err)
		}
	})
}

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
