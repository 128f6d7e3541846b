// Package templates provides the embedded default extraction templates.
// Each .json file describes the output structure for one document type and
// is passed verbatim to the model inside the extraction prompt.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.json
var templateFS embed.FS

// FS returns the embedded template files.
func FS() fs.FS {
	return templateFS
}
