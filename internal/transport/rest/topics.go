package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
	"github.com/forumhq/discuss-backend/internal/service/topic"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	GetTopic(ctx context.Context, slug string) (*domain.Topic, error)
	ListTopics(ctx context.Context) ([]domain.TopicWithCount, error)
	TrendingTopics(ctx context.Context) ([]domain.TopicWithCount, error)
	DeleteTopic(ctx context.Context, input topic.DeleteTopicInput) error
}

// TopicHandler serves topic REST endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic")}
}

type createTopicRequest struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type topicResponse struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type topicWithCountResponse struct {
	topicResponse
	PostCount int `json:"postCount"`
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if !decodeBody(w, r, &req) {
		return
	}

	t, err := h.svc.CreateTopic(r.Context(), topic.CreateTopicInput{
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(t))
}

// Get handles GET /api/topics/{slug}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetTopic(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// List handles GET /api/topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.ListTopics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicListResponse(topics))
}

// Trending handles GET /api/topics/trending.
func (h *TopicHandler) Trending(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.TrendingTopics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicListResponse(topics))
}

// Delete handles DELETE /api/topics/{id}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	if err := h.svc.DeleteTopic(r.Context(), topic.DeleteTopicInput{TopicID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		ID:          t.ID.String(),
		Slug:        t.Slug,
		Description: t.Description,
		UserID:      t.UserID.String(),
		CreatedAt:   t.CreatedAt,
	}
}

func toTopicListResponse(topics []domain.TopicWithCount) []topicWithCountResponse {
	out := make([]topicWithCountResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, topicWithCountResponse{
			topicResponse: toTopicResponse(&t.Topic),
			PostCount:     t.PostCount,
		})
	}
	return out
}
