package providers

import (
	"fmt"
	"strings"
)

// DefaultModelAlias is the alias that resolves to the configured default model.
const DefaultModelAlias = "default"

// AllowedModels lists the model aliases this extractor accepts. The
// extraction contract targets OpenAI vision-capable chat models; unknown
// aliases are rejected before any network call happens.
var AllowedModels = []string{
	DefaultModelAlias,
	"gpt-4.1-mini",
	"gpt-4.1",
	"gpt-4o-mini",
	"gpt-4o",
	// Legacy/dated aliases kept for compatibility.
	"gpt-4.1-2025-04-14",
	"gpt-4.1-mini-2025-04-14",
	"gpt-5-2025-08-07",
	"gpt-5-mini-2025-08-07",
}

// ResolveModelAlias validates alias against AllowedModels and resolves the
// "default" alias to defaultModel. An empty alias resolves to defaultModel.
func ResolveModelAlias(alias, defaultModel string) (string, error) {
	alias = strings.TrimSpace(alias)
	if alias == "" || alias == DefaultModelAlias {
		return defaultModel, nil
	}

	for _, m := range AllowedModels {
		if alias == m {
			return alias, nil
		}
	}

	return "", fmt.Errorf("unsupported model alias %q (supported: %s)",
		alias, strings.Join(AllowedModels, ", "))
}
