package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"idscan-backend/internal/ingest"
	"idscan-backend/internal/shared/telemetry"
)

// Config controls PDF rasterization.
type Config struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
	DPI      int    // rendering resolution, default 300
}

// Recognizer produces recognized text from an ingested document. Images go to
// the engine in one call; PDFs are rasterized page by page first.
type Recognizer struct {
	cfg    Config
	engine Engine
	runner Runner
}

// NewRecognizer constructs a Recognizer around the given engine.
func NewRecognizer(cfg Config, engine Engine) *Recognizer {
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Recognizer{cfg: cfg, engine: engine, runner: execRunner{}}
}

// Recognize dispatches on the document kind. Any OCR or rasterization failure
// aborts the whole document; there is no retry and no partial result.
func (r *Recognizer) Recognize(ctx context.Context, path string, kind ingest.Kind) (string, error) {
	switch kind {
	case ingest.KindImage:
		return r.engine.Recognize(ctx, path)
	case ingest.KindPDF:
		return r.recognizePDF(ctx, path)
	default:
		return "", fmt.Errorf("unrecognizable document kind %q", kind)
	}
}

// recognizePDF renders every page to a PNG at the configured DPI, runs OCR per
// page, and concatenates the per-page text in page order with no delimiter.
func (r *Recognizer) recognizePDF(ctx context.Context, path string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "idscan-raster-")
	if err != nil {
		return "", fmt.Errorf("create raster dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			telemetry.Warn("ocr.raster.cleanup_failed", map[string]any{"dir": tmpDir, "error": err.Error()})
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm, "-r", strconv.Itoa(r.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", fmt.Errorf("rasterize pdf: %s: %w", strings.TrimSpace(string(errb)), err)
	}

	// pdftoppm zero-pads page numbers to the width of the page count, so a
	// lexicographic sort restores page order.
	pages, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(pages)
	if len(pages) == 0 {
		return "", fmt.Errorf("rasterize pdf: no pages rendered")
	}

	if declared, err := countPages(path); err == nil && declared != len(pages) {
		telemetry.Warn("ocr.raster.page_mismatch", map[string]any{
			"path":     filepath.Base(path),
			"declared": declared,
			"rendered": len(pages),
		})
	}

	var b strings.Builder
	for _, img := range pages {
		text, err := r.engine.Recognize(ctx, img)
		if err != nil {
			return "", fmt.Errorf("ocr %s: %w", filepath.Base(img), err)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}
