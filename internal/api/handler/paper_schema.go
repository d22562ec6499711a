package handler

import (
	"time"

	"github.com/researchsphere/hub-api/internal/core/domain"
	"github.com/researchsphere/hub-api/internal/core/ports"
)

type createPaperRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Authors     []string   `json:"authors"     validate:"required,min=1,dive,required"`
	Type        string     `json:"type"        validate:"required,oneof=PAPER JOURNAL CONFERENCE"`
	Content     string     `json:"content"     validate:"required"`
	Source      string     `json:"source"      validate:"required"`
	PublishDate *time.Time `json:"publishDate"`
	Tags        []string   `json:"tags"`
}

type updatePaperRequest struct {
	Title       *string    `json:"title"   validate:"omitempty,min=1"`
	Authors     []string   `json:"authors" validate:"omitempty,min=1,dive,required"`
	Content     *string    `json:"content" validate:"omitempty,min=1"`
	Source      *string    `json:"source"  validate:"omitempty,min=1"`
	PublishDate *time.Time `json:"publishDate"`
	Tags        []string   `json:"tags"`
}

// paperDetailResponse is the single-paper view. Bookmarked is present only
// for authenticated viewers.
type paperDetailResponse struct {
	*domain.Paper
	Views      int64 `json:"views"`
	Bookmarked *bool `json:"bookmarked,omitempty"`
}

func toCreatePaperInput(req createPaperRequest) ports.CreatePaperInput {
	return ports.CreatePaperInput{
		Title:       req.Title,
		Authors:     req.Authors,
		Type:        domain.PaperType(req.Type),
		Content:     req.Content,
		Source:      req.Source,
		PublishDate: req.PublishDate,
		Tags:        req.Tags,
	}
}

func toUpdatePaperInput(req updatePaperRequest) ports.UpdatePaperInput {
	return ports.UpdatePaperInput{
		Title:       req.Title,
		Authors:     req.Authors,
		Content:     req.Content,
		Source:      req.Source,
		PublishDate: req.PublishDate,
		Tags:        req.Tags,
	}
}

func toPaperPageResponse(page *ports.PaperPage) pageResponse {
	return pageResponse{
		Data:   page.Data,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
		Pages:  page.Pages,
	}
}
