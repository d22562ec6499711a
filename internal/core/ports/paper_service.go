package ports

import (
	"context"
	"time"

	"github.com/researchsphere/hub-api/internal/core/domain"
)

// CreatePaperInput carries all data needed to upload a paper.
type CreatePaperInput struct {
	Title       string
	Authors     []string
	Type        domain.PaperType
	Content     string
	Source      string
	PublishDate *time.Time
	Tags        []string
}

// UpdatePaperInput carries optional paper changes; nil fields are left
// untouched.
type UpdatePaperInput struct {
	Title       *string
	Authors     []string
	Content     *string
	Source      *string
	PublishDate *time.Time
	Tags        []string
}

// SearchPapersInput carries the public search parameters.
type SearchPapersInput struct {
	Type   domain.PaperType
	Tags   []string
	Search string
	Limit  int
	Offset int
}

// PaperDetail is the full paper view, personalized when a viewer identity is
// present.
type PaperDetail struct {
	Paper      *domain.Paper
	Views      int64
	Bookmarked bool
}

// PaperPage is one page of papers plus pagination metadata.
// Pages is ceil(Total/Limit).
type PaperPage struct {
	Data   []*domain.Paper
	Total  int64
	Limit  int
	Offset int
	Pages  int
}

// PaperService defines the research-paper use cases.
type PaperService interface {
	Create(ctx context.Context, owner *domain.Identity, input CreatePaperInput) (*domain.Paper, error)
	// Get returns the paper detail. viewer may be nil (anonymous request);
	// when present, the Bookmarked flag is populated for that user.
	Get(ctx context.Context, id string, viewer *domain.Identity) (*PaperDetail, error)
	Search(ctx context.Context, input SearchPapersInput) (*PaperPage, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) (*PaperPage, error)
	Update(ctx context.Context, id, ownerID string, input UpdatePaperInput) (*domain.Paper, error)
	Delete(ctx context.Context, id, ownerID string) error
}
