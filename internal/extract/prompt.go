package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SystemPrompt frames the model as an extraction engine.
const SystemPrompt = "You are a precise document extraction engine."

// BuildPrompt builds the user prompt instructing the model to extract data
// into the exact JSON structure defined by the template.
func BuildPrompt(documentType string, template json.RawMessage) (string, error) {
	var indented bytes.Buffer
	if err := json.Indent(&indented, template, "", "  "); err != nil {
		return "", fmt.Errorf("failed to serialize template into prompt: %w", err)
	}

	return fmt.Sprintf(`You are a document data extraction system.

Document Type: %s

Extract all information from the provided document image(s) and return it in the following exact JSON structure:

%s

Instructions:
- Output only valid JSON matching exactly the structure above
- Do NOT add explanations
- Do NOT wrap the JSON in markdown, backticks, or code fences
- If a field is missing, set it to ""
- Use the exact field names; do not modify the structure
- Extract information from ALL pages
`, documentType, indented.String()), nil
}
