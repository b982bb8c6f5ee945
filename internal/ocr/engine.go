package ocr

import "context"

// Engine is the OCR provider contract: one image file in, recognized text out.
// Implementations may be backed by native libraries, local binaries, or remote
// services; callers treat recognition as a black box.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, imagePath string) (string, error)
}
