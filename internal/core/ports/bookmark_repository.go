package ports

import (
	"context"

	"github.com/researchsphere/hub-api/internal/core/domain"
)

// BookmarkRepository defines persistence operations for bookmarks.
type BookmarkRepository interface {
	// Upsert creates the bookmark if absent and returns the stored row either
	// way; duplicates are absorbed by the unique (user_id, paper_id) index.
	Upsert(ctx context.Context, userID, paperID string) (*domain.Bookmark, error)
	// Delete removes the bookmark owned by userID. Zero deleted rows maps to
	// domain.ErrBookmarkNotFound.
	Delete(ctx context.Context, userID, paperID string) error
	// DeleteAllForPaper removes every user's bookmark of the paper. Used when
	// the paper itself is deleted; zero rows is not an error.
	DeleteAllForPaper(ctx context.Context, paperID string) error
	Exists(ctx context.Context, userID, paperID string) (bool, error)
	List(ctx context.Context, userID string, limit, offset int) ([]*domain.Bookmark, int64, error)
}
