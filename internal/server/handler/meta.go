package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// MetaHandler serves the root and health-check endpoints.
type MetaHandler struct {
	version string
	data    domain.Dataset
	logger  *slog.Logger
}

// NewMetaHandler creates a MetaHandler. data may be nil until the dataset
// has been loaded; Health reports that state.
func NewMetaHandler(version string, data domain.Dataset, logger *slog.Logger) *MetaHandler {
	return &MetaHandler{
		version: version,
		data:    data,
		logger:  logger,
	}
}

// Root identifies the API.
// GET /
func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "BBL Multi Builder API",
		"version": h.version,
	})
}

// Health reports liveness and whether the dataset finished loading.
// GET /health
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "healthy",
		"data_loaded": h.data != nil,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
