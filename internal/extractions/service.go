package extractions

import (
	"context"
	"fmt"
	"io"

	"idscan-backend/internal/extract"
	"idscan-backend/internal/ingest"
	"idscan-backend/internal/shared/metrics"
	"idscan-backend/internal/shared/telemetry"
)

// Recognizer turns a saved document into text.
type Recognizer interface {
	Recognize(ctx context.Context, path string, kind ingest.Kind) (string, error)
}

// Service runs the extraction pipeline: save the upload, recognize text, derive
// fields, append the record to the store.
type Service struct {
	recognizer Recognizer
	repo       Repo
}

// NewService constructs a Service.
func NewService(recognizer Recognizer, repo Repo) *Service {
	return &Service{recognizer: recognizer, repo: repo}
}

// Process handles one uploaded document and returns the extracted record.
// A store append failure does not fail the request: the record was already
// produced, so it is returned and the failure is logged and counted.
func (s *Service) Process(ctx context.Context, filename string, r io.Reader) (extract.Record, error) {
	path, kind, cleanup, err := ingest.Save(filename, r)
	if err != nil {
		return extract.Record{}, err
	}
	defer cleanup()

	text, err := s.recognizer.Recognize(ctx, path, kind)
	if err != nil {
		return extract.Record{}, fmt.Errorf("recognize %s: %w", filename, err)
	}
	// The temp file is only needed for recognition.
	cleanup()

	rec := extract.FromText(text, filename)

	if err := s.repo.Append(ctx, rec); err != nil {
		metrics.IncPersistFailed()
		telemetry.Error("extraction.persist.failed", map[string]any{
			"filename":      filename,
			"document_type": rec.DocumentType,
			"error":         err.Error(),
		})
	}

	return rec, nil
}
