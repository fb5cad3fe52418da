package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
	"github.com/forumhq/discuss-backend/internal/service/comment"
)

// commentService defines the minimal interface needed by CommentHandler.
type commentService interface {
	CreateComment(ctx context.Context, input comment.CreateCommentInput) (*domain.Comment, error)
	ListComments(ctx context.Context, postID uuid.UUID) ([]*domain.CommentNode, error)
}

// CommentHandler serves comment REST endpoints.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type createCommentRequest struct {
	Content  string  `json:"content"`
	PostID   string  `json:"postId"`
	ParentID *string `json:"parentId,omitempty"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	PostID    string    `json:"postId"`
	ParentID  *string   `json:"parentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type commentNodeResponse struct {
	commentResponse
	AuthorName   string                `json:"authorName"`
	AuthorAvatar *string               `json:"authorAvatar,omitempty"`
	Replies      []commentNodeResponse `json:"replies"`
}

// Create handles POST /api/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := comment.CreateCommentInput{Content: req.Content}

	if req.PostID != "" {
		postID, err := uuid.Parse(req.PostID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid post id")
			return
		}
		input.PostID = postID
	}

	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid parent id")
			return
		}
		input.ParentID = &parentID
	}

	c, err := h.svc.CreateComment(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}

// ListByPost handles GET /api/posts/{id}/comments.
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	nodes, err := h.svc.ListComments(r.Context(), postID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentTreeResponse(nodes))
}

func toCommentResponse(c *domain.Comment) commentResponse {
	resp := commentResponse{
		ID:        c.ID.String(),
		Content:   c.Content,
		UserID:    c.UserID.String(),
		PostID:    c.PostID.String(),
		CreatedAt: c.CreatedAt,
	}
	if c.ParentID != nil {
		parent := c.ParentID.String()
		resp.ParentID = &parent
	}
	return resp
}

func toCommentTreeResponse(nodes []*domain.CommentNode) []commentNodeResponse {
	out := make([]commentNodeResponse, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, commentNodeResponse{
			commentResponse: toCommentResponse(&node.Comment),
			AuthorName:      node.AuthorName,
			AuthorAvatar:    node.AuthorAvatar,
			Replies:         toCommentTreeResponse(node.Replies),
		})
	}
	return out
}
