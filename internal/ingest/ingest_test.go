package ingest

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestDetectKind(t *testing.T) {
	cases := []struct {
		filename string
		want     Kind
	}{
		{"id.jpg", KindImage},
		{"id.JPEG", KindImage},
		{"scan.png", KindImage},
		{"scan.bmp", KindImage},
		{"scan.tiff", KindImage},
		{"passport.pdf", KindPDF},
		{"passport.PDF", KindPDF},
		{"notes.txt", KindUnsupported},
		{"letter.docx", KindUnsupported},
		{"noext", KindUnsupported},
	}
	for _, tc := range cases {
		if got := DetectKind(tc.filename); got != tc.want {
			t.Errorf("DetectKind(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestSavePreservesExtensionAndCleansUp(t *testing.T) {
	path, kind, cleanup, err := Save("Photo.JPG", strings.NewReader("payload"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if kind != KindImage {
		t.Fatalf("expected image kind, got %q", kind)
	}
	if !strings.HasSuffix(path, ".jpg") {
		t.Fatalf("expected .jpg suffix, got %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read temp file: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected temp file contents %q", data)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected temp file removed, stat err = %v", err)
	}

	// Repeated cleanup must be harmless.
	cleanup()
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	_, kind, cleanup, err := Save("notes.txt", strings.NewReader("x"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if kind != KindUnsupported {
		t.Fatalf("expected unsupported kind, got %q", kind)
	}
	if cleanup != nil {
		t.Fatalf("expected nil cleanup for rejected upload")
	}
}
