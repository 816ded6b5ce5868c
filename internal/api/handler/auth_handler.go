package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

// AuthHandler handles HTTP requests for registration, login, logout, and
// password reset.
type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionService
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

type registerRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Role      string `json:"role"       validate:"required,oneof=issuer investor"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token            string       `json:"token,omitempty"`
	User             *domain.User `json:"user,omitempty"`
	RequiresApproval bool         `json:"requires_approval,omitempty"`
	AccountSuspended bool         `json:"account_suspended,omitempty"`
	Error            string       `json:"error,omitempty"`
}

type resetRequestBody struct {
	Email string `json:"email" validate:"required,email"`
}

type resetConfirmBody struct {
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// Register creates a new issuer or investor account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      domain.Role(req.Role),
		Company:   req.Company,
		Phone:     req.Phone,
		Country:   req.Country,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid registration details"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{"user": user})
}

// Login authenticates an account and returns a bearer token. Accounts gated
// by status return 403 with a distinguishing flag and the user, so clients
// can branch without string matching.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  loginResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountPending):
			return c.JSON(http.StatusForbidden, loginResponse{
				User:             result.User,
				RequiresApproval: true,
				Error:            err.Error(),
			})
		case errors.Is(err, domain.ErrAccountSuspended):
			return c.JSON(http.StatusForbidden, loginResponse{
				User:             result.User,
				AccountSuspended: true,
				Error:            err.Error(),
			})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: result.Token, User: result.User})
}

// Logout destroys the current session.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  "session destroyed"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID, _ := c.Get("session_id").(string)
	if sessionID != "" {
		if err := h.sessions.Destroy(c.Request().Context(), sessionID); err != nil {
			return err
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current session's user, cross-checked against the live user
// set.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sessionID, _ := c.Get("session_id").(string)
	user, err := h.sessions.Current(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

// RequestPasswordReset issues a reset token. The response is identical for
// known and unknown emails to prevent account enumeration.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetRequestBody  true  "Account email"
// @Success      202   {object}  map[string]string
// @Router       /auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req resetRequestBody
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.authService.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "reset email sent if the account exists"})
}

// ConfirmPasswordReset consumes a reset token and sets a new password.
//
// @Summary      Confirm a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetConfirmBody  true  "Token and new password"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      410   {object}  map[string]string
// @Router       /auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req resetConfirmBody
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrResetTokenInvalid):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrResetTokenExpired), errors.Is(err, domain.ErrResetTokenUsed):
			return c.JSON(http.StatusGone, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "password updated"})
}
