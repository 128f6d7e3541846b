package render

import (
	"context"
	"fmt"
	"sync/atomic"
)

// MockRenderer is a Renderer for testing.
type MockRenderer struct {
	Pages      [][]byte
	ShouldFail bool

	callCount atomic.Int64
}

// NewMockRenderer returns a mock producing a single fake page.
func NewMockRenderer() *MockRenderer {
	return &MockRenderer{
		Pages: [][]byte{[]byte("fake-jpeg-page-1")},
	}
}

// RenderPages returns the configured pages, capped at maxPages.
func (r *MockRenderer) RenderPages(ctx context.Context, pdfPath string, maxPages int) ([][]byte, error) {
	r.callCount.Add(1)

	if r.ShouldFail {
		return nil, fmt.Errorf("%w: mock renderer configured to fail", ErrRenderFailed)
	}
	if len(r.Pages) == 0 {
		return nil, fmt.Errorf("%w: PDF has no pages", ErrRenderFailed)
	}

	pages := r.Pages
	if maxPages > 0 && len(pages) > maxPages {
		pages = pages[:maxPages]
	}

	out := make([][]byte, len(pages))
	copy(out, pages)
	return out, nil
}

// CallCount returns how many times RenderPages was invoked.
func (r *MockRenderer) CallCount() int64 {
	return r.callCount.Load()
}

// Verify interface
var _ Renderer = (*MockRenderer)(nil)
