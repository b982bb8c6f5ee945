package ocr

import (
	"github.com/ledongthuc/pdf"
)

// countPages reads the page count from the PDF catalog. Used only to
// cross-check the number of rasterized pages; failures are non-fatal.
func countPages(path string) (int, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return reader.NumPage(), nil
}
