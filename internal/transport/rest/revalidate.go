package rest

import (
	"log/slog"
	"net/http"
	"time"
)

// staleConsumer defines the minimal interface for the revalidation registry.
type staleConsumer interface {
	Consume() map[string]time.Time
}

// RevalidateHandler exposes the set of pages invalidated by recent
// mutations so an external renderer can re-generate them.
type RevalidateHandler struct {
	registry staleConsumer
	log      *slog.Logger
}

// NewRevalidateHandler creates a RevalidateHandler.
func NewRevalidateHandler(registry staleConsumer, logger *slog.Logger) *RevalidateHandler {
	return &RevalidateHandler{registry: registry, log: logger.With("handler", "revalidate")}
}

type stalePathResponse struct {
	Path     string    `json:"path"`
	MarkedAt time.Time `json:"markedAt"`
}

// Consume handles POST /api/revalidate/consume. It returns all currently
// stale paths and clears them, so each path is handed out exactly once.
func (h *RevalidateHandler) Consume(w http.ResponseWriter, r *http.Request) {
	stale := h.registry.Consume()

	paths := make([]stalePathResponse, 0, len(stale))
	for path, markedAt := range stale {
		paths = append(paths, stalePathResponse{Path: path, MarkedAt: markedAt})
	}

	h.log.DebugContext(r.Context(), "stale paths consumed", slog.Int("count", len(paths)))
	writeJSON(w, http.StatusOK, map[string]any{"paths": paths})
}
