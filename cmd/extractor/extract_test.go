package main

import (
	"encoding/json"
	"testing"

	"github.com/pradyten/pdf-extractor/internal/extract"
)

func TestExtractOutput(t *testing.T) {
	result := &extract.Result{
		DocumentType: "Resume/CV",
		Fields:       json.RawMessage(`{"full_name": "Jane Doe"}`),
		RequestID:    "req-1",
	}

	t.Run("default prints fields only", func(t *testing.T) {
		out, err := extractOutput(result, false)
		if err != nil {
			t.Fatalf("extractOutput: %v", err)
		}
		fields, ok := out.(map[string]any)
		if !ok {
			t.Fatalf("output type = %T, want map", out)
		}
		if fields["full_name"] != "Jane Doe" {
			t.Errorf("full_name = %v", fields["full_name"])
		}
		if _, leaked := fields["document_type"]; leaked {
			t.Error("metadata leaked into default output")
		}
	})

	t.Run("full prints the envelope", func(t *testing.T) {
		out, err := extractOutput(result, true)
		if err != nil {
			t.Fatalf("extractOutput: %v", err)
		}
		if out != result {
			t.Errorf("output = %v, want the result itself", out)
		}
	})
}
