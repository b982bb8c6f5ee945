package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine implements Engine using the gosseract client. A fresh client
// is created per call; gosseract clients are not safe for concurrent reuse.
type TesseractEngine struct {
	lang          string
	clientFactory func() *gosseract.Client
}

// NewTesseractEngine constructs a Tesseract-backed OCR engine. lang is a
// Tesseract trained-data identifier such as "eng"; empty keeps the library
// default.
func NewTesseractEngine(lang string) *TesseractEngine {
	return &TesseractEngine{
		lang:          lang,
		clientFactory: gosseract.NewClient,
	}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Recognize runs OCR over the image at imagePath and returns the recognized text.
func (e *TesseractEngine) Recognize(ctx context.Context, imagePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := e.clientFactory()
	defer c.Close()

	if e.lang != "" {
		if err := c.SetLanguage(e.lang); err != nil {
			return "", fmt.Errorf("set language %q: %w", e.lang, err)
		}
	}
	if err := c.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize image: %w", err)
	}
	return text, nil
}
