package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

type stubUserAdminService struct {
	stubAuthService
	updateUserFn     func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error)
	updateBrandingFn func(ctx context.Context, userID string, branding domain.Branding) (*domain.User, error)
	usersFn          func(ctx context.Context) ([]domain.User, error)
}

func (s *stubUserAdminService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateUserFn(ctx, id, in)
}

func (s *stubUserAdminService) UpdateBranding(ctx context.Context, userID string, branding domain.Branding) (*domain.User, error) {
	return s.updateBrandingFn(ctx, userID, branding)
}

func (s *stubUserAdminService) Users(ctx context.Context) ([]domain.User, error) {
	return s.usersFn(ctx)
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserAdminService{
		usersFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: "u-1", Email: "admin@assetbridge.io", Role: domain.RoleAdmin},
				{ID: "u-2", Email: "alice@example.com", Role: domain.RoleInvestor},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/users", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	users, ok := resp["users"].([]any)
	if !ok || len(users) != 2 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Update(t *testing.T) {
	stub := &stubUserAdminService{
		updateUserFn: func(_ context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
			if id != "user-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if in.Status == nil || *in.Status != domain.UserStatusActive {
				t.Fatalf("status not forwarded: %+v", in)
			}
			if in.FirstName != nil {
				t.Fatalf("unset fields must stay nil: %+v", in)
			}
			return &domain.User{ID: id, Status: *in.Status}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/users/user-1",
		`{"status":"active"}`)
	c.SetParamNames("id")
	c.SetParamValues("user-1")
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Update_Unknown(t *testing.T) {
	stub := &stubUserAdminService{
		updateUserFn: func(context.Context, string, ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/users/ghost", `{"status":"active"}`)
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_Update_BadStatus(t *testing.T) {
	stub := &stubUserAdminService{
		updateUserFn: func(context.Context, string, ports.UpdateUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/users/user-1", `{"status":"vaporized"}`)
	c.SetParamNames("id")
	c.SetParamValues("user-1")
	_ = handler.Update(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_UpdateBranding(t *testing.T) {
	stub := &stubUserAdminService{
		updateBrandingFn: func(_ context.Context, userID string, branding domain.Branding) (*domain.User, error) {
			if userID != "issuer-1" || branding.PrimaryColor != "#1a2b3c" {
				t.Fatalf("unexpected args: %s %+v", userID, branding)
			}
			return &domain.User{ID: userID, Branding: &branding}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/v1/branding",
		`{"company_name":"Acme Capital","primary_color":"#1a2b3c"}`)
	c.Set("user_id", "issuer-1")
	c.Set("role", "issuer")
	if err := handler.UpdateBranding(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_UpdateBranding_BadColor(t *testing.T) {
	stub := &stubUserAdminService{
		updateBrandingFn: func(context.Context, string, domain.Branding) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/v1/branding",
		`{"primary_color":"reddish"}`)
	c.Set("user_id", "issuer-1")
	c.Set("role", "issuer")
	_ = handler.UpdateBranding(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
