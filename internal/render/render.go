// Package render converts PDF pages into raster images for the model to read.
package render

import (
	"context"
	"errors"
)

// ErrRenderFailed is returned when a PDF cannot be rasterized (corrupt
// file, unsupported format, or no pages produced).
var ErrRenderFailed = errors.New("render failed")

// DefaultMaxPages bounds how many pages are rendered and attached to a
// single extraction request.
const DefaultMaxPages = 10

// Renderer rasterizes the leading pages of a PDF to JPEG images.
type Renderer interface {
	// RenderPages renders up to maxPages pages (all pages when maxPages
	// is zero or negative) and returns JPEG bytes in page order.
	RenderPages(ctx context.Context, pdfPath string, maxPages int) ([][]byte, error)
}

// quality selects render resolution and JPEG quality from the page count.
// Fewer pages get a higher DPI; larger documents are downscaled to keep
// request payloads manageable.
func quality(pageCount int) (dpi, jpegQuality int) {
	switch {
	case pageCount <= 2:
		return 300, 80
	case pageCount <= 10:
		return 150, 60
	default:
		return 110, 60
	}
}
