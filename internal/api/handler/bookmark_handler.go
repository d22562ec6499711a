package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/researchsphere/hub-api/internal/core/domain"
	"github.com/researchsphere/hub-api/internal/core/ports"
)

// BookmarkHandler handles HTTP requests for bookmark operations. All routes
// sit behind the mandatory guard.
type BookmarkHandler struct {
	service ports.BookmarkService
}

func NewBookmarkHandler(service ports.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

type bookmarkItemResponse struct {
	*domain.Bookmark
	Paper *domain.Paper `json:"paper"`
}

// Add handles POST /api/bookmarks/:paperId. Re-adding an existing bookmark
// succeeds without side effects.
func (h *BookmarkHandler) Add(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	bookmark, err := h.service.Add(c.Request().Context(), identity.UserID, c.Param("paperId"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "paper added to bookmarks", bookmark)
}

// Remove handles DELETE /api/bookmarks/:paperId.
func (h *BookmarkHandler) Remove(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), identity.UserID, c.Param("paperId")); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "bookmark removed", nil)
}

// List handles GET /api/bookmarks.
func (h *BookmarkHandler) List(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	limit, offset := pageParams(c)
	page, err := h.service.List(c.Request().Context(), identity.UserID, limit, offset)
	if err != nil {
		return err
	}

	items := make([]bookmarkItemResponse, 0, len(page.Data))
	for _, item := range page.Data {
		items = append(items, bookmarkItemResponse{Bookmark: item.Bookmark, Paper: item.Paper})
	}

	return respond(c, http.StatusOK, "bookmarks retrieved", pageResponse{
		Data:   items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
		Pages:  page.Pages,
	})
}

// Check handles GET /api/bookmarks/:paperId/check.
func (h *BookmarkHandler) Check(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	bookmarked, err := h.service.IsBookmarked(c.Request().Context(), identity.UserID, c.Param("paperId"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "bookmark status retrieved", map[string]bool{"bookmarked": bookmarked})
}
