package post

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
	"github.com/forumhq/discuss-backend/pkg/ctxutil"
)

func newTestService(
	t *testing.T,
	posts *postRepoMock,
	topics *topicRepoMock,
	comments *commentRepoMock,
	pages *invalidatorMock,
) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tx := &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
	return NewService(log, posts, topics, comments, tx, pages, 10)
}

func authedCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

// ---------------------------------------------------------------------------
// CreatePost
// ---------------------------------------------------------------------------

func TestCreatePost_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	topicID := uuid.New()
	postID := uuid.New()

	topicMock := &topicRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
			return &domain.Topic{ID: topicID, Slug: "golang"}, nil
		},
	}
	postMock := &postRepoMock{
		CreateFunc: func(ctx context.Context, in *domain.Post) (*domain.Post, error) {
			return &domain.Post{
				ID:        postID,
				Title:     in.Title,
				Content:   in.Content,
				UserID:    in.UserID,
				TopicID:   in.TopicID,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		},
	}
	pages := &invalidatorMock{}
	svc := newTestService(t, postMock, topicMock, &commentRepoMock{}, pages)

	result, err := svc.CreatePost(authedCtx(userID), CreatePostInput{
		Title:   "Generics in practice",
		Content: "What finally made them click for me.",
		TopicID: topicID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ID != postID {
		t.Errorf("post ID: got %v, want %v", result.ID, postID)
	}
	if result.UserID != userID {
		t.Errorf("author: got %v, want %v", result.UserID, userID)
	}

	paths := pages.InvalidateCalls()
	if len(paths) != 1 || paths[0] != "/topics/golang" {
		t.Errorf("invalidated paths: got %v, want [/topics/golang]", paths)
	}
}

func TestCreatePost_Unauthenticated(t *testing.T) {
	t.Parallel()

	postMock := &postRepoMock{}
	svc := newTestService(t, postMock, &topicRepoMock{}, &commentRepoMock{}, &invalidatorMock{})

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title:   "Generics in practice",
		Content: "What finally made them click for me.",
		TopicID: uuid.New(),
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
	if len(postMock.CreateCalls()) != 0 {
		t.Error("storage should not be touched for anonymous callers")
	}
}

func TestCreatePost_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input CreatePostInput
		field string
	}{
		{"short title", CreatePostInput{Title: "x", Content: strings.Repeat("c", 20), TopicID: uuid.New()}, "title"},
		{"empty title", CreatePostInput{Title: "", Content: strings.Repeat("c", 20), TopicID: uuid.New()}, "title"},
		{"short content", CreatePostInput{Title: "Fine title", Content: "too short", TopicID: uuid.New()}, "content"},
		{"missing topic", CreatePostInput{Title: "Fine title", Content: strings.Repeat("c", 20)}, "topic_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestService(t, &postRepoMock{}, &topicRepoMock{}, &commentRepoMock{}, &invalidatorMock{})

			_, err := svc.CreatePost(authedCtx(uuid.New()), tc.input)

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if len(ve.Errors) != 1 || ve.Errors[0].Field != tc.field {
				t.Errorf("expected one error on %q, got %v", tc.field, ve.Errors)
			}
		})
	}
}

func TestCreatePost_TopicGone(t *testing.T) {
	t.Parallel()

	topicMock := &topicRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
			return nil, domain.ErrNotFound
		},
	}
	postMock := &postRepoMock{}
	svc := newTestService(t, postMock, topicMock, &commentRepoMock{}, &invalidatorMock{})

	_, err := svc.CreatePost(authedCtx(uuid.New()), CreatePostInput{
		Title:   "Orphan",
		Content: "The topic vanished before this post.",
		TopicID: uuid.New(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if len(postMock.CreateCalls()) != 0 {
		t.Error("Create should not run when the topic is gone")
	}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func TestGetPost_Success(t *testing.T) {
	t.Parallel()

	postID := uuid.New()
	postMock := &postRepoMock{
		GetWithDataFunc: func(ctx context.Context, id uuid.UUID) (*domain.PostWithData, error) {
			return &domain.PostWithData{
				Post:         domain.Post{ID: postID},
				TopicSlug:    "golang",
				AuthorName:   "gopher",
				CommentCount: 3,
			}, nil
		},
	}
	svc := newTestService(t, postMock, &topicRepoMock{}, &commentRepoMock{}, &invalidatorMock{})

	got, err := svc.GetPost(context.Background(), postID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CommentCount != 3 {
		t.Errorf("CommentCount: got %d, want 3", got.CommentCount)
	}
}

func TestGetPost_NilID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &postRepoMock{}, &topicRepoMock{}, &commentRepoMock{}, &invalidatorMock{})

	_, err := svc.GetPost(context.Background(), uuid.Nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}

func TestListByTopic_TopicMissing(t *testing.T) {
	t.Parallel()

	topicMock := &topicRepoMock{
		GetBySlugFunc: func(ctx context.Context, slug string) (*domain.Topic, error) {
			return nil, domain.ErrNotFound
		},
	}
	postMock := &postRepoMock{}
	svc := newTestService(t, postMock, topicMock, &commentRepoMock{}, &invalidatorMock{})

	_, err := svc.ListByTopic(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if len(postMock.ListByTopicSlugCalls()) != 0 {
		t.Error("posts should not be listed for a missing topic")
	}
}

func TestListByTopic_EmptyTopic(t *testing.T) {
	t.Parallel()

	topicMock := &topicRepoMock{
		GetBySlugFunc: func(ctx context.Context, slug string) (*domain.Topic, error) {
			return &domain.Topic{ID: uuid.New(), Slug: slug}, nil
		},
	}
	postMock := &postRepoMock{
		ListByTopicSlugFunc: func(ctx context.Context, slug string) ([]domain.PostWithData, error) {
			return []domain.PostWithData{}, nil
		},
	}
	svc := newTestService(t, postMock, topicMock, &commentRepoMock{}, &invalidatorMock{})

	list, err := svc.ListByTopic(context.Background(), "quiet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %d posts", len(list))
	}
}

func TestTopPosts_UsesConfiguredLimit(t *testing.T) {
	t.Parallel()

	postMock := &postRepoMock{
		TopByCommentsFunc: func(ctx context.Context, limit int) ([]domain.PostWithData, error) {
			return []domain.PostWithData{}, nil
		},
	}
	svc := newTestService(t, postMock, &topicRepoMock{}, &commentRepoMock{}, &invalidatorMock{})

	if _, err := svc.TopPosts(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := postMock.TopByCommentsCalls()
	if len(calls) != 1 || calls[0] != 10 {
		t.Errorf("expected one call with limit 10, got %v", calls)
	}
}

// ---------------------------------------------------------------------------
// DeletePost
// ---------------------------------------------------------------------------

func TestDeletePost_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	topicID := uuid.New()
	postID := uuid.New()

	var order []string
	postMock := &postRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
			return &domain.Post{ID: postID, UserID: userID, TopicID: topicID}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			order = append(order, "post")
			return 1, nil
		},
	}
	topicMock := &topicRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
			return &domain.Topic{ID: topicID, Slug: "golang"}, nil
		},
	}
	commentMock := &commentRepoMock{
		DeleteByPostIDFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			order = append(order, "comments")
			return 5, nil
		},
	}
	pages := &invalidatorMock{}
	svc := newTestService(t, postMock, topicMock, commentMock, pages)

	err := svc.DeletePost(authedCtx(userID), DeletePostInput{PostID: postID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(order) != 2 || order[0] != "comments" || order[1] != "post" {
		t.Errorf("cascade order: got %v, want [comments post]", order)
	}

	paths := pages.InvalidateCalls()
	if len(paths) != 1 || paths[0] != "/topics/golang" {
		t.Errorf("invalidated paths: got %v, want [/topics/golang]", paths)
	}
}

func TestDeletePost_NotOwner(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	intruder := uuid.New()
	postID := uuid.New()

	postMock := &postRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
			return &domain.Post{ID: postID, UserID: owner, TopicID: uuid.New()}, nil
		},
	}
	commentMock := &commentRepoMock{}
	svc := newTestService(t, postMock, &topicRepoMock{}, commentMock, &invalidatorMock{})

	err := svc.DeletePost(authedCtx(intruder), DeletePostInput{PostID: postID})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
	if len(commentMock.DeleteByPostIDCalls()) != 0 {
		t.Error("no deletes should run for a non-owner")
	}
}

func TestDeletePost_NotFound(t *testing.T) {
	t.Parallel()

	postMock := &postRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(t, postMock, &topicRepoMock{}, &commentRepoMock{}, &invalidatorMock{})

	err := svc.DeletePost(authedCtx(uuid.New()), DeletePostInput{PostID: uuid.New()})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestDeletePost_VanishedDuringTx(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	postID := uuid.New()

	postMock := &postRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
			return &domain.Post{ID: postID, UserID: userID, TopicID: uuid.New()}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 0, nil
		},
	}
	topicMock := &topicRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
			return &domain.Topic{ID: id, Slug: "golang"}, nil
		},
	}
	commentMock := &commentRepoMock{
		DeleteByPostIDFunc: func(ctx context.Context, id uuid.UUID) (int64, error) { return 0, nil },
	}
	pages := &invalidatorMock{}
	svc := newTestService(t, postMock, topicMock, commentMock, pages)

	err := svc.DeletePost(authedCtx(userID), DeletePostInput{PostID: postID})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if len(pages.InvalidateCalls()) != 0 {
		t.Error("nothing should be invalidated on failure")
	}
}
