package ports

import (
	"context"

	"github.com/researchsphere/hub-api/internal/core/domain"
)

// PaperFilter carries the search parameters for listing papers.
type PaperFilter struct {
	OwnerID string           // non-empty = scoped to one uploader
	Type    domain.PaperType // optional: filter by publication type
	Tags    []string         // optional: papers carrying any of these tags
	Search  string           // optional: substring on title/content, exact author match
	Limit   int
	Offset  int
}

// PaperRepository defines persistence operations for research papers.
// Mutations filter by both paper id and owner id; a zero match count maps to
// domain.ErrPaperNotFound so non-owners cannot distinguish foreign papers
// from absent ones.
type PaperRepository interface {
	Create(ctx context.Context, paper *domain.Paper) (*domain.Paper, error)
	FindByID(ctx context.Context, id string) (*domain.Paper, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Paper, error)
	Search(ctx context.Context, filter PaperFilter) ([]*domain.Paper, int64, error)
	Update(ctx context.Context, id, ownerID string, update UpdatePaperInput) (*domain.Paper, error)
	Delete(ctx context.Context, id, ownerID string) error
}
