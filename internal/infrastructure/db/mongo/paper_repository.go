package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/researchsphere/hub-api/internal/core/domain"
	"github.com/researchsphere/hub-api/internal/core/ports"
)

const collectionPapers = "papers"

// PaperRepository persists research papers in MongoDB.
type PaperRepository struct {
	col *mongo.Collection
}

func NewPaperRepository(db *mongo.Database) *PaperRepository {
	return &PaperRepository{col: db.Collection(collectionPapers)}
}

type mongoPaper struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Authors     []string           `bson:"authors"`
	Type        string             `bson:"type"`
	Content     string             `bson:"content"`
	Source      string             `bson:"source"`
	PublishDate *time.Time         `bson:"publish_date,omitempty"`
	Tags        []string           `bson:"tags"`
	Owner       domain.Owner       `bson:"owner"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (p mongoPaper) toDomain() *domain.Paper {
	return &domain.Paper{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Authors:     p.Authors,
		Type:        domain.PaperType(p.Type),
		Content:     p.Content,
		Source:      p.Source,
		PublishDate: p.PublishDate,
		Tags:        p.Tags,
		Owner:       p.Owner,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *PaperRepository) Create(ctx context.Context, paper *domain.Paper) (*domain.Paper, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPaper{
		Title:       paper.Title,
		Authors:     paper.Authors,
		Type:        string(paper.Type),
		Content:     paper.Content,
		Source:      paper.Source,
		PublishDate: paper.PublishDate,
		Tags:        paper.Tags,
		Owner:       paper.Owner,
		CreatedAt:   paper.CreatedAt,
		UpdatedAt:   paper.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert paper: %w", err)
	}

	created := *paper
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PaperRepository) FindByID(ctx context.Context, id string) (*domain.Paper, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPaperNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoPaper
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaperNotFound
		}
		return nil, fmt.Errorf("find paper: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaperRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Paper, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find papers: %w", err)
	}
	defer cur.Close(ctx)

	var papers []*domain.Paper
	for cur.Next(ctx) {
		var doc mongoPaper
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode paper: %w", err)
		}
		papers = append(papers, doc.toDomain())
	}
	return papers, cur.Err()
}

// Search returns a page of papers matching filter plus the total count.
// The free-text search is a case-insensitive substring match on title and
// content, or an exact author match; tags match any-of.
func (r *PaperRepository) Search(ctx context.Context, filter ports.PaperFilter) ([]*domain.Paper, int64, error) {
	query := bson.M{}
	if filter.OwnerID != "" {
		query["owner.id"] = filter.OwnerID
	}
	if filter.Type != "" {
		query["type"] = string(filter.Type)
	}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"content": pattern},
			bson.M{"authors": filter.Search},
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count papers: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("search papers: %w", err)
	}
	defer cur.Close(ctx)

	var papers []*domain.Paper
	for cur.Next(ctx) {
		var doc mongoPaper
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode paper: %w", err)
		}
		papers = append(papers, doc.toDomain())
	}
	return papers, total, cur.Err()
}

// Update applies non-nil fields to the paper matching both id and owner.
// Zero matched rows (absent paper or foreign owner) maps to
// ErrPaperNotFound, deliberately indistinguishable.
func (r *PaperRepository) Update(ctx context.Context, id, ownerID string, update ports.UpdatePaperInput) (*domain.Paper, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPaperNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Authors != nil {
		set["authors"] = update.Authors
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Source != nil {
		set["source"] = *update.Source
	}
	if update.PublishDate != nil {
		set["publish_date"] = *update.PublishDate
	}
	if update.Tags != nil {
		set["tags"] = update.Tags
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid, "owner.id": ownerID}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update paper: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPaperNotFound
	}

	return r.FindByID(ctx, id)
}

// Delete removes the paper matching both id and owner, with the same
// not-found semantics as Update.
func (r *PaperRepository) Delete(ctx context.Context, id, ownerID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPaperNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "owner.id": ownerID})
	if err != nil {
		return fmt.Errorf("delete paper: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPaperNotFound
	}
	return nil
}

// EnsureIndexes creates the secondary indexes used by search and ownership
// filters.
func (r *PaperRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner.id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
