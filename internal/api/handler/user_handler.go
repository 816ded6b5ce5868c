package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

// UserHandler handles the administrative user console and issuer branding.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

type updateUserRequest struct {
	Status          *string          `json:"status"     validate:"omitempty,oneof=active pending suspended kyc_pending kyc_approved kyc_rejected"`
	KYCStatus       *string          `json:"kyc_status" validate:"omitempty,oneof=not_started in_progress pending_review approved rejected"`
	InvestmentLimit *decimal.Decimal `json:"investment_limit"`
	FirstName       *string          `json:"first_name"`
	LastName        *string          `json:"last_name"`
	Company         *string          `json:"company"`
	Phone           *string          `json:"phone"`
	Country         *string          `json:"country"`
}

type brandingRequest struct {
	CompanyName  string `json:"company_name"`
	LogoURL      string `json:"logo_url"      validate:"omitempty,url"`
	PrimaryColor string `json:"primary_color" validate:"omitempty,hexcolor"`
	SupportEmail string `json:"support_email" validate:"omitempty,email"`
}

// List returns the merged user set.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.authService.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"users": users})
}

// Update applies an administrative mutation to a user.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /v1/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	in := ports.UpdateUserInput{
		InvestmentLimit: req.InvestmentLimit,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Company:         req.Company,
		Phone:           req.Phone,
		Country:         req.Country,
	}
	if req.Status != nil {
		status := domain.UserStatus(*req.Status)
		in.Status = &status
	}
	if req.KYCStatus != nil {
		kyc := domain.KYCStatus(*req.KYCStatus)
		in.KYCStatus = &kyc
	}

	user, err := h.authService.UpdateUser(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

// UpdateBranding replaces the authenticated issuer's white-label theme.
//
// @Summary      Update issuer branding
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      brandingRequest  true  "Branding"
// @Success      200   {object}  map[string]any
// @Router       /v1/branding [put]
func (h *UserHandler) UpdateBranding(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req brandingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.UpdateBranding(c.Request().Context(), userID, domain.Branding{
		CompanyName:  req.CompanyName,
		LogoURL:      req.LogoURL,
		PrimaryColor: req.PrimaryColor,
		SupportEmail: req.SupportEmail,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"user": user})
}
