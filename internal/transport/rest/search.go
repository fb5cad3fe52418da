package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/forumhq/discuss-backend/internal/service/search"
)

// searchService defines the minimal interface needed by SearchHandler.
type searchService interface {
	Search(ctx context.Context, term string) (*search.Result, error)
}

// SearchHandler serves the forum search endpoint.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

type searchResponse struct {
	Topics []topicWithCountResponse `json:"topics"`
	Posts  []postWithDataResponse   `json:"posts"`
}

// Search handles GET /api/search?q=term.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Topics: toTopicListResponse(result.Topics),
		Posts:  toPostListResponse(result.Posts),
	})
}
