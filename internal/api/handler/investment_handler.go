package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

// InvestmentHandler handles HTTP requests for investment records.
type InvestmentHandler struct {
	service ports.InvestmentService
}

func NewInvestmentHandler(service ports.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{service: service}
}

type createInvestmentRequest struct {
	AssetID      string          `json:"asset_id" validate:"required"`
	Amount       decimal.Decimal `json:"amount"   validate:"required"`
	KYCRequired  bool            `json:"kyc_required"`
	KYCCompleted bool            `json:"kyc_completed"`
	Documents    []string        `json:"documents"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected completed cancelled"`
	Reason string `json:"reason"`
}

// Create records a new investment for the authenticated user.
//
// @Summary      Create an investment
// @Tags         investments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvestmentRequest  true  "Investment details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /v1/investments [post]
func (h *InvestmentHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	inv, err := h.service.Create(c.Request().Context(), ports.CreateInvestmentInput{
		UserID:       userID,
		AssetID:      req.AssetID,
		Amount:       req.Amount,
		KYCRequired:  req.KYCRequired,
		KYCCompleted: req.KYCCompleted,
		Documents:    req.Documents,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{"investment": inv})
}

// List returns the authenticated user's investments. Admins may inspect any
// user's records via ?user_id.
//
// @Summary      List investments
// @Tags         investments
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query     string  false  "Admin only: list another user's investments"
// @Success      200      {object}  map[string]any
// @Router       /v1/investments [get]
func (h *InvestmentHandler) List(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	target := userID
	if q := c.QueryParam("user_id"); q != "" && role == string(domain.RoleAdmin) {
		target = q
	}

	investments, err := h.service.ListByUser(c.Request().Context(), target)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"investments": investments})
}

// UpdateStatus applies a status change to an investment.
//
// @Summary      Update investment status
// @Tags         investments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Investment id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /v1/investments/{id}/status [patch]
func (h *InvestmentHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	inv, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.InvestmentStatus(req.Status), req.Reason)
	if err != nil {
		if errors.Is(err, domain.ErrInvestmentNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"investment": inv})
}
