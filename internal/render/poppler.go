package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PopplerRenderer renders PDF pages using pdftoppm (poppler-utils).
// pdftoppm renders pages correctly, unlike pdfcpu's image extraction which
// pulls embedded image objects whose numbering may not match page order;
// pdfcpu is still used to validate the file and count pages.
type PopplerRenderer struct{}

// NewPopplerRenderer returns the production renderer.
func NewPopplerRenderer() *PopplerRenderer {
	return &PopplerRenderer{}
}

// RenderPages renders up to maxPages pages to JPEG.
func (r *PopplerRenderer) RenderPages(ctx context.Context, pdfPath string, maxPages int) ([][]byte, error) {
	pageCount, err := countPages(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	if pageCount == 0 {
		return nil, fmt.Errorf("%w: PDF has no pages", ErrRenderFailed)
	}

	if maxPages > 0 && pageCount > maxPages {
		pageCount = maxPages
	}
	dpi, jpegQuality := quality(pageCount)

	tmpDir, err := os.MkdirTemp("", "extractor-pages-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	images := make([][]byte, 0, pageCount)
	for page := 1; page <= pageCount; page++ {
		img, err := renderSinglePage(ctx, pdfPath, tmpDir, page, dpi, jpegQuality)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrRenderFailed, page, err)
		}
		images = append(images, img)
	}

	return images, nil
}

// countPages validates the PDF and returns its page count via pdfcpu.
func countPages(pdfPath string) (int, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	count, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count: %w", err)
	}
	return count, nil
}

// renderSinglePage renders one page with pdftoppm.
func renderSinglePage(ctx context.Context, pdfPath, tmpDir string, page, dpi, jpegQuality int) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	outputPrefix := filepath.Join(tmpDir, fmt.Sprintf("page-%04d", page))
	pageStr := fmt.Sprintf("%d", page)

	// -jpeg: output JPEG format
	// -jpegopt quality=N: compression quality
	// -f/-l N: first/last page to render
	// -r N: resolution in DPI
	// -singlefile: don't add page number suffix (we handle naming ourselves)
	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-jpeg",
		"-jpegopt", fmt.Sprintf("quality=%d", jpegQuality),
		"-f", pageStr,
		"-l", pageStr,
		"-r", fmt.Sprintf("%d", dpi),
		"-singlefile",
		pdfPath,
		outputPrefix,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w (output: %s)", err, string(output))
	}

	// pdftoppm with -singlefile creates: <prefix>.jpg
	data, err := os.ReadFile(outputPrefix + ".jpg")
	if err != nil {
		return nil, fmt.Errorf("pdftoppm did not create expected output: %w", err)
	}
	return data, nil
}

// Verify interface
var _ Renderer = (*PopplerRenderer)(nil)
