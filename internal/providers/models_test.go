package providers

import (
	"strings"
	"testing"
)

func TestResolveModelAlias(t *testing.T) {
	tests := []struct {
		name    string
		alias   string
		want    string
		wantErr bool
	}{
		{name: "empty uses default", alias: "", want: "gpt-4.1-mini"},
		{name: "default alias", alias: "default", want: "gpt-4.1-mini"},
		{name: "whitespace uses default", alias: "  ", want: "gpt-4.1-mini"},
		{name: "explicit model", alias: "gpt-4o", want: "gpt-4o"},
		{name: "dated alias", alias: "gpt-4.1-2025-04-14", want: "gpt-4.1-2025-04-14"},
		{name: "unknown model", alias: "claude-3", wantErr: true},
		{name: "near miss", alias: "gpt4o", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveModelAlias(tt.alias, "gpt-4.1-mini")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveModelAlias(%q): expected error", tt.alias)
				}
				if !strings.Contains(err.Error(), "unsupported model alias") {
					t.Errorf("error = %v, want unsupported alias message", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveModelAlias(%q): %v", tt.alias, err)
			}
			if got != tt.want {
				t.Errorf("resolved = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAllowedModelsIncludesDefault(t *testing.T) {
	found := false
	for _, m := range AllowedModels {
		if m == DefaultModelAlias {
			found = true
		}
	}
	if !found {
		t.Errorf("AllowedModels missing %q", DefaultModelAlias)
	}
}
