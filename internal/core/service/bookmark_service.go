package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/researchsphere/hub-api/internal/core/domain"
	"github.com/researchsphere/hub-api/internal/core/ports"
	"github.com/researchsphere/hub-api/internal/metrics"
)

// BookmarkService implements per-user bookmarking.
type BookmarkService struct {
	bookmarks ports.BookmarkRepository
	papers    ports.PaperRepository
	logger    zerolog.Logger
}

func NewBookmarkService(bookmarks ports.BookmarkRepository, papers ports.PaperRepository, logger zerolog.Logger) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks, papers: papers, logger: logger}
}

// Add bookmarks the paper for the user. The paper must exist; re-adding an
// existing bookmark returns the stored row without side effects.
func (s *BookmarkService) Add(ctx context.Context, userID, paperID string) (*domain.Bookmark, error) {
	if _, err := s.papers.FindByID(ctx, paperID); err != nil {
		return nil, err
	}

	bookmark, err := s.bookmarks.Upsert(ctx, userID, paperID)
	if err != nil {
		return nil, err
	}

	metrics.BookmarksTotal.WithLabelValues("added").Inc()
	return bookmark, nil
}

// Remove deletes the user's bookmark. A missing row (never bookmarked, or
// already removed) fails with domain.ErrBookmarkNotFound; the conditional
// delete makes concurrent removals safe without locking.
func (s *BookmarkService) Remove(ctx context.Context, userID, paperID string) error {
	if err := s.bookmarks.Delete(ctx, userID, paperID); err != nil {
		return err
	}

	metrics.BookmarksTotal.WithLabelValues("removed").Inc()
	return nil
}

// List returns a page of the user's bookmarks, newest first, each paired with
// its paper. Bookmarks whose paper has been deleted are skipped.
func (s *BookmarkService) List(ctx context.Context, userID string, limit, offset int) (*ports.BookmarkPage, error) {
	limit, offset = clampPage(limit, offset)

	bookmarks, total, err := s.bookmarks.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		ids = append(ids, b.PaperID)
	}

	papers, err := s.papers.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Paper, len(papers))
	for _, p := range papers {
		byID[p.ID] = p
	}

	items := make([]ports.BookmarkWithPaper, 0, len(bookmarks))
	for _, b := range bookmarks {
		paper, ok := byID[b.PaperID]
		if !ok {
			s.logger.Warn().Str("paper_id", b.PaperID).Msg("bookmarked paper missing")
			continue
		}
		items = append(items, ports.BookmarkWithPaper{Bookmark: b, Paper: paper})
	}

	return &ports.BookmarkPage{
		Data:   items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Pages:  pageCount(total, limit),
	}, nil
}

func (s *BookmarkService) IsBookmarked(ctx context.Context, userID, paperID string) (bool, error) {
	return s.bookmarks.Exists(ctx, userID, paperID)
}
