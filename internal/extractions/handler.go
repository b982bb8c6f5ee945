package extractions

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"idscan-backend/internal/ingest"
	"idscan-backend/internal/shared/metrics"
	"idscan-backend/internal/shared/server/middleware"
	"idscan-backend/internal/shared/server/respond"
	"idscan-backend/internal/shared/telemetry"
)

// maxUploadBytes caps a single upload at 10 MiB.
const maxUploadBytes = 10 << 20

// Handler exposes the extraction endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the extraction routes on the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/extract", h.Extract)
}

// Extract accepts a multipart upload under the "file" field, runs the
// pipeline and returns the extracted record.
func (h *Handler) Extract(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		metrics.IncExtractionRejected()
		respond.Error(c, http.StatusBadRequest, "No file part")
		return
	}
	defer file.Close()

	// A part with a blank filename means nothing was selected on the form.
	if strings.TrimSpace(header.Filename) == "" {
		metrics.IncExtractionRejected()
		respond.Error(c, http.StatusBadRequest, "No selected file")
		return
	}

	metrics.IncExtractionStarted()
	start := metrics.NowMillis()

	rec, err := h.service.Process(c.Request.Context(), header.Filename, file)
	if err != nil {
		if errors.Is(err, ingest.ErrUnsupportedFormat) {
			metrics.IncExtractionRejected()
			respond.Error(c, http.StatusBadRequest, "Unsupported file format")
			return
		}
		metrics.IncExtractionFailed()
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.IncExtractionCompleted()
	metrics.ObserveExtractionDurationMs(metrics.NowMillis() - start)
	telemetry.Info("extraction.completed", map[string]any{
		"request_id":    middleware.RequestIDFromContext(c),
		"filename":      header.Filename,
		"document_type": rec.DocumentType,
	})

	respond.OK(c, rec)
}
