package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/researchsphere/hub-api/internal/core/domain"
	"github.com/researchsphere/hub-api/internal/core/ports"
)

var validPaperTypes = map[string]struct{}{
	string(domain.TypePaper):      {},
	string(domain.TypeJournal):    {},
	string(domain.TypeConference): {},
}

// PaperHandler handles HTTP requests for research-paper operations.
type PaperHandler struct {
	service ports.PaperService
}

func NewPaperHandler(service ports.PaperService) *PaperHandler {
	return &PaperHandler{service: service}
}

// Create handles POST /api/research.
//
// @Summary      Upload a research paper
// @Tags         research
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaperRequest  true  "Paper details"
// @Success      201   {object}  domain.Paper
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/research [post]
func (h *PaperHandler) Create(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req createPaperRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	paper, err := h.service.Create(c.Request().Context(), identity, toCreatePaperInput(req))
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "research paper created", paper)
}

// Get handles GET /api/research/:id. The route sits behind the optional
// guard: anonymous requests get the plain paper, authenticated ones also get
// their bookmark status.
func (h *PaperHandler) Get(c echo.Context) error {
	viewer := identityFrom(c)

	detail, err := h.service.Get(c.Request().Context(), c.Param("id"), viewer)
	if err != nil {
		return err
	}

	resp := paperDetailResponse{Paper: detail.Paper, Views: detail.Views}
	if viewer != nil {
		bookmarked := detail.Bookmarked
		resp.Bookmarked = &bookmarked
	}

	return respond(c, http.StatusOK, "research paper retrieved", resp)
}

// Search handles GET /api/research/search. Public, no guard.
func (h *PaperHandler) Search(c echo.Context) error {
	paperType := c.QueryParam("type")
	if paperType != "" {
		if _, ok := validPaperTypes[paperType]; !ok {
			return newValidationError("type", "type must be one of: PAPER, JOURNAL, CONFERENCE")
		}
	}

	limit, offset := pageParams(c)
	page, err := h.service.Search(c.Request().Context(), ports.SearchPapersInput{
		Type:   domain.PaperType(paperType),
		Tags:   tagParams(c),
		Search: c.QueryParam("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "search completed", toPaperPageResponse(page))
}

// ListMine handles GET /api/research/user/my-papers.
func (h *PaperHandler) ListMine(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	limit, offset := pageParams(c)
	page, err := h.service.ListByOwner(c.Request().Context(), identity.UserID, limit, offset)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "user papers retrieved", toPaperPageResponse(page))
}

// Update handles PUT /api/research/:id. Only the owner can update; a foreign
// paper reads as not found.
func (h *PaperHandler) Update(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req updatePaperRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	paper, err := h.service.Update(c.Request().Context(), c.Param("id"), identity.UserID, toUpdatePaperInput(req))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "research paper updated", paper)
}

// Delete handles DELETE /api/research/:id, with the same ownership semantics
// as Update.
func (h *PaperHandler) Delete(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), identity.UserID); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "research paper deleted", nil)
}

// tagParams collects tags from repeated ?tags= parameters, splitting
// comma-separated values.
func tagParams(c echo.Context) []string {
	var tags []string
	for _, raw := range c.QueryParams()["tags"] {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
