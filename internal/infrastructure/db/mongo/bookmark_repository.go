package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/researchsphere/hub-api/internal/core/domain"
)

const collectionBookmarks = "bookmarks"

// BookmarkRepository persists bookmarks in MongoDB. The compound unique
// index on (user_id, paper_id) absorbs duplicate additions.
type BookmarkRepository struct {
	col *mongo.Collection
}

func NewBookmarkRepository(db *mongo.Database) *BookmarkRepository {
	return &BookmarkRepository{col: db.Collection(collectionBookmarks)}
}

type mongoBookmark struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	PaperID   string             `bson:"paper_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (b mongoBookmark) toDomain() *domain.Bookmark {
	return &domain.Bookmark{
		ID:        b.ID.Hex(),
		UserID:    b.UserID,
		PaperID:   b.PaperID,
		CreatedAt: b.CreatedAt,
	}
}

// Upsert creates the bookmark if absent and returns the stored row either
// way.
func (r *BookmarkRepository) Upsert(ctx context.Context, userID, paperID string) (*domain.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID, "paper_id": paperID}
	update := bson.M{"$setOnInsert": bson.M{
		"user_id":    userID,
		"paper_id":   paperID,
		"created_at": time.Now().UTC(),
	}}

	if _, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return nil, fmt.Errorf("upsert bookmark: %w", err)
	}

	var doc mongoBookmark
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, fmt.Errorf("find bookmark: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete removes the user's bookmark; zero deleted rows maps to
// ErrBookmarkNotFound.
func (r *BookmarkRepository) Delete(ctx context.Context, userID, paperID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"user_id": userID, "paper_id": paperID})
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookmarkNotFound
	}
	return nil
}

// DeleteAllForPaper removes every bookmark referencing the paper, keeping the
// bookmark collection free of dangling rows when a paper is deleted.
func (r *BookmarkRepository) DeleteAllForPaper(ctx context.Context, paperID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"paper_id": paperID}); err != nil {
		return fmt.Errorf("delete bookmarks for paper: %w", err)
	}
	return nil
}

func (r *BookmarkRepository) Exists(ctx context.Context, userID, paperID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.col.FindOne(ctx, bson.M{"user_id": userID, "paper_id": paperID}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("check bookmark: %w", err)
	}
	return true, nil
}

func (r *BookmarkRepository) List(ctx context.Context, userID string, limit, offset int) ([]*domain.Bookmark, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookmarks: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookmarks: %w", err)
	}
	defer cur.Close(ctx)

	var bookmarks []*domain.Bookmark
	for cur.Next(ctx) {
		var doc mongoBookmark
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode bookmark: %w", err)
		}
		bookmarks = append(bookmarks, doc.toDomain())
	}
	return bookmarks, total, cur.Err()
}

// EnsureIndexes creates the compound unique index that makes additions
// idempotent.
func (r *BookmarkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "paper_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
