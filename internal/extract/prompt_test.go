package extract

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	template := json.RawMessage(`{"full_name":"","contact":{"email":""}}`)

	prompt, err := BuildPrompt("Resume/CV", template)
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}

	if !strings.Contains(prompt, "Document Type: Resume/CV") {
		t.Error("prompt missing document type")
	}
	if !strings.Contains(prompt, `"full_name": ""`) {
		t.Error("prompt missing indented template field")
	}
	if !strings.Contains(prompt, "Output only valid JSON") {
		t.Error("prompt missing JSON-only instruction")
	}
	if !strings.Contains(prompt, `set it to ""`) {
		t.Error("prompt missing empty-field instruction")
	}
	if !strings.Contains(prompt, "ALL pages") {
		t.Error("prompt missing multi-page instruction")
	}
}

func TestBuildPromptInvalidTemplate(t *testing.T) {
	if _, err := BuildPrompt("Resume/CV", json.RawMessage("{broken")); err == nil {
		t.Error("expected error for malformed template")
	}
}
