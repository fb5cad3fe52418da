package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/forumhq/discuss-backend/internal/adapter/postgres"
	commentrepo "github.com/forumhq/discuss-backend/internal/adapter/postgres/comment"
	postrepo "github.com/forumhq/discuss-backend/internal/adapter/postgres/post"
	tokenrepo "github.com/forumhq/discuss-backend/internal/adapter/postgres/token"
	topicrepo "github.com/forumhq/discuss-backend/internal/adapter/postgres/topic"
	userrepo "github.com/forumhq/discuss-backend/internal/adapter/postgres/user"
	"github.com/forumhq/discuss-backend/internal/adapter/provider/github"
	"github.com/forumhq/discuss-backend/internal/auth"
	"github.com/forumhq/discuss-backend/internal/config"
	"github.com/forumhq/discuss-backend/internal/revalidate"
	authsvc "github.com/forumhq/discuss-backend/internal/service/auth"
	commentsvc "github.com/forumhq/discuss-backend/internal/service/comment"
	postsvc "github.com/forumhq/discuss-backend/internal/service/post"
	searchsvc "github.com/forumhq/discuss-backend/internal/service/search"
	topicsvc "github.com/forumhq/discuss-backend/internal/service/topic"
	"github.com/forumhq/discuss-backend/internal/transport/middleware"
	"github.com/forumhq/discuss-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// storage adapters, services and HTTP transport, and serves until ctx is
// cancelled, then drains in-flight requests.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	topics := topicrepo.New(pool)
	posts := postrepo.New(pool)
	comments := commentrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	pages := revalidate.New(logger)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	verifier := github.NewVerifier(cfg.Auth.GithubClientID, cfg.Auth.GithubClientSecret, cfg.Auth.GithubRedirectURI, logger)

	if !cfg.Auth.GithubConfigured() {
		logger.Warn("github oauth credentials missing, sign-in disabled")
	}

	authService := authsvc.NewService(logger, users, tokens, verifier, jwtManager, cfg.Auth)
	topicService := topicsvc.NewService(logger, topics, posts, comments, txManager, pages, cfg.Forum.TrendingTopicsLimit)
	postService := postsvc.NewService(logger, posts, topics, comments, txManager, pages, cfg.Forum.TopPostsLimit)
	commentService := commentsvc.NewService(logger, comments, posts, topics, pages)
	searchService := searchsvc.NewService(logger, topics, posts, cfg.Forum.SearchLimit)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handlers := rest.Handlers{
		Auth:       rest.NewAuthHandler(authService, logger),
		Topics:     rest.NewTopicHandler(topicService, logger),
		Posts:      rest.NewPostHandler(postService, logger),
		Comments:   rest.NewCommentHandler(commentService, logger),
		Search:     rest.NewSearchHandler(searchService, logger),
		Health:     rest.NewHealthHandler(pool, Version),
		Revalidate: rest.NewRevalidateHandler(pages, logger),
	}

	router := rest.NewRouter(handlers, rest.RouterDeps{
		Logger:      logger,
		AuthMW:      middleware.Auth(authService),
		RateLimiter: rateLimiter,
		CORS:        cfg.CORS,
		Forum:       cfg.Forum,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
