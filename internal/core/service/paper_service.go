package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/researchsphere/hub-api/internal/core/domain"
	"github.com/researchsphere/hub-api/internal/core/ports"
	"github.com/researchsphere/hub-api/internal/metrics"
)

// PaperService implements the research-paper use cases.
type PaperService struct {
	papers    ports.PaperRepository
	bookmarks ports.BookmarkRepository
	users     ports.UserRepository
	views     ports.ViewCounter
	logger    zerolog.Logger
}

func NewPaperService(papers ports.PaperRepository, bookmarks ports.BookmarkRepository, users ports.UserRepository, views ports.ViewCounter, logger zerolog.Logger) *PaperService {
	return &PaperService{papers: papers, bookmarks: bookmarks, users: users, views: views, logger: logger}
}

// Create uploads a paper owned by the acting identity. The owner's display
// name is snapshotted into the paper document at upload time.
func (s *PaperService) Create(ctx context.Context, owner *domain.Identity, input ports.CreatePaperInput) (*domain.Paper, error) {
	account, err := s.users.FindByID(ctx, owner.UserID)
	if err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	paper := &domain.Paper{
		Title:       input.Title,
		Authors:     input.Authors,
		Type:        input.Type,
		Content:     input.Content,
		Source:      input.Source,
		PublishDate: input.PublishDate,
		Tags:        tags,
		Owner:       domain.Owner{ID: owner.UserID, Name: account.Name},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.papers.Create(ctx, paper)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create paper")
		return nil, err
	}

	metrics.PapersCreatedTotal.WithLabelValues(string(created.Type)).Inc()
	s.logger.Info().Str("paper_id", created.ID).Str("user_id", owner.UserID).Msg("paper created")
	return created, nil
}

// Get returns the paper detail, bumping its view counter. When viewer is
// non-nil the Bookmarked flag reflects that user; anonymous requests leave it
// false. A failing view counter degrades to a zero count rather than failing
// the read.
func (s *PaperService) Get(ctx context.Context, id string, viewer *domain.Identity) (*ports.PaperDetail, error) {
	paper, err := s.papers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := s.views.Increment(ctx, paper.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("paper_id", paper.ID).Msg("view counter unavailable")
		views = 0
	}

	detail := &ports.PaperDetail{Paper: paper, Views: views}
	if viewer != nil {
		bookmarked, err := s.bookmarks.Exists(ctx, viewer.UserID, paper.ID)
		if err != nil {
			return nil, err
		}
		detail.Bookmarked = bookmarked
	}

	return detail, nil
}

// Search lists papers matching the public filters, newest first.
func (s *PaperService) Search(ctx context.Context, input ports.SearchPapersInput) (*ports.PaperPage, error) {
	limit, offset := clampPage(input.Limit, input.Offset)

	papers, total, err := s.papers.Search(ctx, ports.PaperFilter{
		Type:   input.Type,
		Tags:   input.Tags,
		Search: input.Search,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}

	return &ports.PaperPage{
		Data:   papers,
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Pages:  pageCount(total, limit),
	}, nil
}

// ListByOwner lists the acting user's own uploads.
func (s *PaperService) ListByOwner(ctx context.Context, ownerID string, limit, offset int) (*ports.PaperPage, error) {
	limit, offset = clampPage(limit, offset)

	papers, total, err := s.papers.Search(ctx, ports.PaperFilter{
		OwnerID: ownerID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, err
	}

	return &ports.PaperPage{
		Data:   papers,
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Pages:  pageCount(total, limit),
	}, nil
}

// Update modifies a paper owned by ownerID. A paper that does not exist and a
// paper owned by someone else both fail with domain.ErrPaperNotFound.
func (s *PaperService) Update(ctx context.Context, id, ownerID string, input ports.UpdatePaperInput) (*domain.Paper, error) {
	updated, err := s.papers.Update(ctx, id, ownerID, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("paper_id", id).Str("user_id", ownerID).Msg("paper updated")
	return updated, nil
}

// Delete removes a paper owned by ownerID, with the same not-found semantics
// as Update. Bookmarks of the deleted paper are removed as well, so bookmark
// pages keep counting only rows that resolve to a paper.
func (s *PaperService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.papers.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	if err := s.bookmarks.DeleteAllForPaper(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("paper_id", id).Msg("failed to remove bookmarks of deleted paper")
	}

	s.logger.Info().Str("paper_id", id).Str("user_id", ownerID).Msg("paper deleted")
	return nil
}
