package ports

import (
	"context"

	"github.com/researchsphere/hub-api/internal/core/domain"
)

// BookmarkWithPaper pairs a bookmark with the paper it references for list
// responses.
type BookmarkWithPaper struct {
	Bookmark *domain.Bookmark
	Paper    *domain.Paper
}

// BookmarkPage is one page of a user's bookmarks.
type BookmarkPage struct {
	Data   []BookmarkWithPaper
	Total  int64
	Limit  int
	Offset int
	Pages  int
}

// BookmarkService defines the per-user bookmarking use cases.
type BookmarkService interface {
	// Add bookmarks the paper for the user. Fails with domain.ErrPaperNotFound
	// when the paper does not exist; re-adding is idempotent.
	Add(ctx context.Context, userID, paperID string) (*domain.Bookmark, error)
	Remove(ctx context.Context, userID, paperID string) error
	List(ctx context.Context, userID string, limit, offset int) (*BookmarkPage, error)
	IsBookmarked(ctx context.Context, userID, paperID string) (bool, error)
}
