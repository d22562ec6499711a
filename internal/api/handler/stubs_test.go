package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/researchsphere/hub-api/internal/api/middleware"
	"github.com/researchsphere/hub-api/internal/core/domain"
	"github.com/researchsphere/hub-api/internal/core/ports"
)

// Function-field stubs let each test script exactly the service behavior it
// needs.

type stubAuthService struct {
	registerFn       func(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error)
	loginFn          func(ctx context.Context, email, password string) (*domain.User, string, error)
	getUserFn        func(ctx context.Context, id string) (*domain.User, error)
	updateProfileFn  func(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error)
	changePasswordFn func(ctx context.Context, userID, oldPassword, newPassword string) error
	listUsersFn      func(ctx context.Context, limit, offset int) (*ports.UserPage, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getUserFn(ctx, id)
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	return s.updateProfileFn(ctx, userID, input)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	return s.changePasswordFn(ctx, userID, oldPassword, newPassword)
}

func (s *stubAuthService) ListUsers(ctx context.Context, limit, offset int) (*ports.UserPage, error) {
	return s.listUsersFn(ctx, limit, offset)
}

type stubPaperService struct {
	createFn      func(ctx context.Context, owner *domain.Identity, input ports.CreatePaperInput) (*domain.Paper, error)
	getFn         func(ctx context.Context, id string, viewer *domain.Identity) (*ports.PaperDetail, error)
	searchFn      func(ctx context.Context, input ports.SearchPapersInput) (*ports.PaperPage, error)
	listByOwnerFn func(ctx context.Context, ownerID string, limit, offset int) (*ports.PaperPage, error)
	updateFn      func(ctx context.Context, id, ownerID string, input ports.UpdatePaperInput) (*domain.Paper, error)
	deleteFn      func(ctx context.Context, id, ownerID string) error
}

func (s *stubPaperService) Create(ctx context.Context, owner *domain.Identity, input ports.CreatePaperInput) (*domain.Paper, error) {
	return s.createFn(ctx, owner, input)
}

func (s *stubPaperService) Get(ctx context.Context, id string, viewer *domain.Identity) (*ports.PaperDetail, error) {
	return s.getFn(ctx, id, viewer)
}

func (s *stubPaperService) Search(ctx context.Context, input ports.SearchPapersInput) (*ports.PaperPage, error) {
	return s.searchFn(ctx, input)
}

func (s *stubPaperService) ListByOwner(ctx context.Context, ownerID string, limit, offset int) (*ports.PaperPage, error) {
	return s.listByOwnerFn(ctx, ownerID, limit, offset)
}

func (s *stubPaperService) Update(ctx context.Context, id, ownerID string, input ports.UpdatePaperInput) (*domain.Paper, error) {
	return s.updateFn(ctx, id, ownerID, input)
}

func (s *stubPaperService) Delete(ctx context.Context, id, ownerID string) error {
	return s.deleteFn(ctx, id, ownerID)
}

type stubBookmarkService struct {
	addFn          func(ctx context.Context, userID, paperID string) (*domain.Bookmark, error)
	removeFn       func(ctx context.Context, userID, paperID string) error
	listFn         func(ctx context.Context, userID string, limit, offset int) (*ports.BookmarkPage, error)
	isBookmarkedFn func(ctx context.Context, userID, paperID string) (bool, error)
}

func (s *stubBookmarkService) Add(ctx context.Context, userID, paperID string) (*domain.Bookmark, error) {
	return s.addFn(ctx, userID, paperID)
}

func (s *stubBookmarkService) Remove(ctx context.Context, userID, paperID string) error {
	return s.removeFn(ctx, userID, paperID)
}

func (s *stubBookmarkService) List(ctx context.Context, userID string, limit, offset int) (*ports.BookmarkPage, error) {
	return s.listFn(ctx, userID, limit, offset)
}

func (s *stubBookmarkService) IsBookmarked(ctx context.Context, userID, paperID string) (bool, error) {
	return s.isBookmarkedFn(ctx, userID, paperID)
}

// newTestContext builds an echo context with the validator installed, a JSON
// body, and (optionally) an authenticated identity.
func newTestContext(t *testing.T, method, target, body string, identity *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(middleware.IdentityKey, identity)
	}
	return c, rec
}

func testIdentity() *domain.Identity {
	return &domain.Identity{UserID: "user-1", Email: "alice@example.com", Role: domain.RoleUser}
}
