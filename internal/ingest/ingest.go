package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Kind classifies an uploaded document by its file extension.
type Kind string

const (
	KindImage       Kind = "image"
	KindPDF         Kind = "pdf"
	KindUnsupported Kind = "unsupported"
)

// ErrUnsupportedFormat is returned for extensions that route to neither image
// nor PDF recognition.
var ErrUnsupportedFormat = errors.New("unsupported file format")

var imageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".bmp":  {},
	".tiff": {},
}

// DetectKind maps a filename to a document kind by extension, case-insensitively.
func DetectKind(filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".pdf" {
		return KindPDF
	}
	if _, ok := imageExts[ext]; ok {
		return KindImage
	}
	return KindUnsupported
}

// Save materializes an uploaded payload to a transient file. The temp name is
// random but keeps the original extension so downstream tools can route on it.
// The returned cleanup removes the file and is safe to call more than once;
// the caller must invoke it on every exit path.
func Save(filename string, r io.Reader) (string, Kind, func(), error) {
	kind := DetectKind(filename)
	if kind == KindUnsupported {
		return "", KindUnsupported, nil, ErrUnsupportedFormat
	}

	ext := strings.ToLower(filepath.Ext(filename))
	f, err := os.CreateTemp("", "idscan-*"+ext)
	if err != nil {
		return "", kind, nil, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		cleanup()
		return "", kind, nil, fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", kind, nil, fmt.Errorf("close temp file: %w", err)
	}

	return path, kind, cleanup, nil
}
