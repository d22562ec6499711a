package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/researchsphere/hub-api/internal/core/ports"
)

// AuthHandler handles account registration, login and profile management.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account and returns it with a bearer token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Password != req.ConfirmPassword {
		return newValidationError("confirmPassword", "passwords do not match")
	}

	user, token, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "registration successful", authResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// Login authenticates credentials and returns the account with a bearer
// token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "login successful", authResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.authService.GetUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "user profile retrieved", toUserResponse(user))
}

// UpdateProfile changes the authenticated user's name and/or email.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), identity.UserID, ports.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "profile updated", toUserResponse(user))
}

// ChangePassword swaps the authenticated user's password after verifying the
// old one.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.NewPassword != req.ConfirmPassword {
		return newValidationError("confirmPassword", "passwords do not match")
	}

	if err := h.authService.ChangePassword(c.Request().Context(), identity.UserID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "password changed", nil)
}

// ListUsers returns a page of accounts. Admin only; the RBAC middleware runs
// before this handler.
func (h *AuthHandler) ListUsers(c echo.Context) error {
	limit, offset := pageParams(c)

	page, err := h.authService.ListUsers(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}

	users := make([]userResponse, 0, len(page.Data))
	for _, u := range page.Data {
		users = append(users, toUserResponse(u))
	}

	return respond(c, http.StatusOK, "users retrieved", pageResponse{
		Data:   users,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
		Pages:  page.Pages,
	})
}

// pageParams reads limit/offset query parameters, leaving range clamping to
// the service layer.
func pageParams(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	offset, _ = strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}
