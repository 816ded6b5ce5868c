package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

type stubInvestmentService struct {
	createFn func(ctx context.Context, in ports.CreateInvestmentInput) (*domain.Investment, error)
	updateFn func(ctx context.Context, id string, status domain.InvestmentStatus, reason string) (*domain.Investment, error)
	listFn   func(ctx context.Context, userID string) ([]domain.Investment, error)
}

func (s *stubInvestmentService) Create(ctx context.Context, in ports.CreateInvestmentInput) (*domain.Investment, error) {
	return s.createFn(ctx, in)
}

func (s *stubInvestmentService) UpdateStatus(ctx context.Context, id string, status domain.InvestmentStatus, reason string) (*domain.Investment, error) {
	return s.updateFn(ctx, id, status, reason)
}

func (s *stubInvestmentService) ListByUser(ctx context.Context, userID string) ([]domain.Investment, error) {
	return s.listFn(ctx, userID)
}

func TestInvestmentHandler_Create(t *testing.T) {
	stub := &stubInvestmentService{
		createFn: func(_ context.Context, in ports.CreateInvestmentInput) (*domain.Investment, error) {
			if in.UserID != "user-1" || in.AssetID != "asset-1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Investment{ID: "inv-1", UserID: in.UserID, AssetID: in.AssetID, Amount: in.Amount, Status: domain.InvestmentPending}, nil
		},
	}
	handler := NewInvestmentHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/investments",
		`{"asset_id":"asset-1","amount":"2500.00"}`)
	c.Set("user_id", "user-1")
	c.Set("role", "investor")
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestInvestmentHandler_Create_NoIdentity(t *testing.T) {
	stub := &stubInvestmentService{
		createFn: func(context.Context, ports.CreateInvestmentInput) (*domain.Investment, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewInvestmentHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/investments",
		`{"asset_id":"asset-1","amount":"100"}`)
	if err := handler.Create(c); err == nil {
		t.Fatalf("expected 401 error without identity")
	}
}

func TestInvestmentHandler_List(t *testing.T) {
	stub := &stubInvestmentService{
		listFn: func(_ context.Context, userID string) ([]domain.Investment, error) {
			if userID != "user-1" {
				t.Fatalf("expected own records, asked for %s", userID)
			}
			return []domain.Investment{{ID: "inv-1", UserID: userID}}, nil
		},
	}
	handler := NewInvestmentHandler(stub)

	// A non-admin's user_id query parameter is ignored.
	c, rec := newTestContext(t, http.MethodGet, "/v1/investments?user_id=user-2", "")
	c.Set("user_id", "user-1")
	c.Set("role", "investor")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestInvestmentHandler_List_AdminOverride(t *testing.T) {
	stub := &stubInvestmentService{
		listFn: func(_ context.Context, userID string) ([]domain.Investment, error) {
			if userID != "user-2" {
				t.Fatalf("expected admin override target, asked for %s", userID)
			}
			return nil, nil
		},
	}
	handler := NewInvestmentHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/investments?user_id=user-2", "")
	c.Set("user_id", "admin-1")
	c.Set("role", "admin")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestInvestmentHandler_UpdateStatus(t *testing.T) {
	stub := &stubInvestmentService{
		updateFn: func(_ context.Context, id string, status domain.InvestmentStatus, reason string) (*domain.Investment, error) {
			if id != "inv-1" || status != domain.InvestmentRejected || reason != "incomplete KYC" {
				t.Fatalf("unexpected args: %s %s %s", id, status, reason)
			}
			return &domain.Investment{ID: id, Status: status, RejectionReason: reason, Amount: decimal.NewFromInt(100)}, nil
		},
	}
	handler := NewInvestmentHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/investments/inv-1/status",
		`{"status":"rejected","reason":"incomplete KYC"}`)
	c.SetParamNames("id")
	c.SetParamValues("inv-1")
	if err := handler.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	inv, ok := resp["investment"].(map[string]any)
	if !ok || inv["status"] != "rejected" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestInvestmentHandler_UpdateStatus_Unknown(t *testing.T) {
	stub := &stubInvestmentService{
		updateFn: func(context.Context, string, domain.InvestmentStatus, string) (*domain.Investment, error) {
			return nil, domain.ErrInvestmentNotFound
		},
	}
	handler := NewInvestmentHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/investments/ghost/status",
		`{"status":"approved"}`)
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	_ = handler.UpdateStatus(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestInvestmentHandler_UpdateStatus_BadStatus(t *testing.T) {
	stub := &stubInvestmentService{
		updateFn: func(context.Context, string, domain.InvestmentStatus, string) (*domain.Investment, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewInvestmentHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/investments/inv-1/status",
		`{"status":"exploded"}`)
	c.SetParamNames("id")
	c.SetParamValues("inv-1")
	_ = handler.UpdateStatus(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
