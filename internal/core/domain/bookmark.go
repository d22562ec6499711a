package domain

import (
	"errors"
	"time"
)

var ErrBookmarkNotFound = errors.New("bookmark not found")

// Bookmark links a user to a saved paper. The (UserID, PaperID) pair is
// unique; adding an existing bookmark is an idempotent no-op.
type Bookmark struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	PaperID   string    `json:"paper_id" bson:"paper_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
