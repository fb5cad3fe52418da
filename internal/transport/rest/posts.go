package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
	"github.com/forumhq/discuss-backend/internal/service/post"
)

// postService defines the minimal interface needed by PostHandler.
type postService interface {
	CreatePost(ctx context.Context, input post.CreatePostInput) (*domain.Post, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*domain.PostWithData, error)
	ListByTopic(ctx context.Context, slug string) ([]domain.PostWithData, error)
	TopPosts(ctx context.Context) ([]domain.PostWithData, error)
	DeletePost(ctx context.Context, input post.DeletePostInput) error
}

// PostHandler serves post REST endpoints.
type PostHandler struct {
	svc postService
	log *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(svc postService, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: logger.With("handler", "post")}
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	TopicID string `json:"topicId"`
}

type postResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	TopicID   string    `json:"topicId"`
	CreatedAt time.Time `json:"createdAt"`
}

type postWithDataResponse struct {
	postResponse
	TopicSlug    string `json:"topicSlug"`
	AuthorName   string `json:"authorName"`
	CommentCount int    `json:"commentCount"`
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	topicID, err := uuid.Parse(req.TopicID)
	if err != nil && req.TopicID != "" {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	p, err := h.svc.CreatePost(r.Context(), post.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		TopicID: topicID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(p))
}

// Get handles GET /api/posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	p, err := h.svc.GetPost(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostWithDataResponse(p))
}

// ListByTopic handles GET /api/topics/{slug}/posts.
func (h *PostHandler) ListByTopic(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListByTopic(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostListResponse(posts))
}

// Top handles GET /api/posts/top.
func (h *PostHandler) Top(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.TopPosts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostListResponse(posts))
}

// Delete handles DELETE /api/posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.svc.DeletePost(r.Context(), post.DeletePostInput{PostID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		Content:   p.Content,
		UserID:    p.UserID.String(),
		TopicID:   p.TopicID.String(),
		CreatedAt: p.CreatedAt,
	}
}

func toPostWithDataResponse(p *domain.PostWithData) postWithDataResponse {
	return postWithDataResponse{
		postResponse: toPostResponse(&p.Post),
		TopicSlug:    p.TopicSlug,
		AuthorName:   p.AuthorName,
		CommentCount: p.CommentCount,
	}
}

func toPostListResponse(posts []domain.PostWithData) []postWithDataResponse {
	out := make([]postWithDataResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostWithDataResponse(&posts[i]))
	}
	return out
}
