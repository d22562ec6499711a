package domain

import (
	"errors"
	"time"
)

// PaperType classifies a research publication.
type PaperType string

const (
	TypePaper      PaperType = "PAPER"
	TypeJournal    PaperType = "JOURNAL"
	TypeConference PaperType = "CONFERENCE"
)

var ErrPaperNotFound = errors.New("research paper not found")

// Owner is the denormalized author snapshot embedded in each paper document,
// taken at upload time.
type Owner struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Paper is a research publication uploaded by a user.
type Paper struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Authors     []string   `json:"authors" bson:"authors"`
	Type        PaperType  `json:"type" bson:"type"`
	Content     string     `json:"content" bson:"content"`
	Source      string     `json:"source" bson:"source"`
	PublishDate *time.Time `json:"publish_date,omitempty" bson:"publish_date,omitempty"`
	Tags        []string   `json:"tags" bson:"tags"`
	Owner       Owner      `json:"owner" bson:"owner"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}
