package rest

import (
	"log/slog"
	"net/http"

	"github.com/forumhq/discuss-backend/internal/config"
	"github.com/forumhq/discuss-backend/internal/transport/middleware"
)

// Handlers bundles the REST handlers the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Topics     *TopicHandler
	Posts      *PostHandler
	Comments   *CommentHandler
	Search     *SearchHandler
	Health     *HealthHandler
	Revalidate *RevalidateHandler
}

// RouterDeps bundles the cross-cutting pieces wired around the handlers.
// AuthMW resolves bearer tokens into a context identity; RateLimiter
// throttles mutating routes per client IP.
type RouterDeps struct {
	Logger      *slog.Logger
	AuthMW      middleware.Middleware
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
	Forum       config.ForumConfig
}

// NewRouter builds the HTTP routing table. Read endpoints are public;
// mutations rely on the auth middleware having resolved an identity and
// are rate limited per client IP.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	limit := deps.RateLimiter.Limit(deps.Forum.MutationsPerMinute)

	// Health probes.
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	// Auth.
	mux.Handle("POST /api/auth/login", limit(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("POST /api/auth/refresh", limit(http.HandlerFunc(h.Auth.Refresh)))
	mux.Handle("POST /api/auth/logout", limit(http.HandlerFunc(h.Auth.Logout)))

	// Topics.
	mux.HandleFunc("GET /api/topics", h.Topics.List)
	mux.HandleFunc("GET /api/topics/trending", h.Topics.Trending)
	mux.HandleFunc("GET /api/topics/{slug}", h.Topics.Get)
	mux.HandleFunc("GET /api/topics/{slug}/posts", h.Posts.ListByTopic)
	mux.Handle("POST /api/topics", limit(http.HandlerFunc(h.Topics.Create)))
	mux.Handle("DELETE /api/topics/{id}", limit(http.HandlerFunc(h.Topics.Delete)))

	// Posts.
	mux.HandleFunc("GET /api/posts/top", h.Posts.Top)
	mux.HandleFunc("GET /api/posts/{id}", h.Posts.Get)
	mux.HandleFunc("GET /api/posts/{id}/comments", h.Comments.ListByPost)
	mux.Handle("POST /api/posts", limit(http.HandlerFunc(h.Posts.Create)))
	mux.Handle("DELETE /api/posts/{id}", limit(http.HandlerFunc(h.Posts.Delete)))

	// Comments.
	mux.Handle("POST /api/comments", limit(http.HandlerFunc(h.Comments.Create)))

	// Search.
	mux.HandleFunc("GET /api/search", h.Search.Search)

	// Revalidation feed for the page renderer.
	mux.HandleFunc("POST /api/revalidate/consume", h.Revalidate.Consume)

	chain := middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		deps.AuthMW,
	)

	return chain(mux)
}
