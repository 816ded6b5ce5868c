package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/infrastructure/db/memory"
)

func TestInvestmentRepository_AppendFindUpdate(t *testing.T) {
	repo := NewInvestmentRepository(memory.NewRecordStore(), zerolog.Nop())
	now := time.Now().UTC()

	inv := &domain.Investment{
		ID:        "inv-1",
		UserID:    "user-1",
		AssetID:   "asset-1",
		Amount:    decimal.NewFromFloat(1234.56),
		Status:    domain.InvestmentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Append(context.Background(), inv); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	got, err := repo.FindByID(context.Background(), "inv-1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if !got.Amount.Equal(decimal.NewFromFloat(1234.56)) {
		t.Fatalf("amount lost precision: %s", got.Amount)
	}

	got.Status = domain.InvestmentApproved
	if err := repo.Update(context.Background(), got); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	again, err := repo.FindByID(context.Background(), "inv-1")
	if err != nil {
		t.Fatalf("FindByID after update: %v", err)
	}
	if again.Status != domain.InvestmentApproved {
		t.Fatalf("update not persisted: %s", again.Status)
	}
}

func TestInvestmentRepository_UnknownID(t *testing.T) {
	repo := NewInvestmentRepository(memory.NewRecordStore(), zerolog.Nop())

	if _, err := repo.FindByID(context.Background(), "ghost"); !errors.Is(err, domain.ErrInvestmentNotFound) {
		t.Fatalf("expected ErrInvestmentNotFound, got %v", err)
	}
	if err := repo.Update(context.Background(), &domain.Investment{ID: "ghost"}); !errors.Is(err, domain.ErrInvestmentNotFound) {
		t.Fatalf("expected ErrInvestmentNotFound, got %v", err)
	}
}

func TestInvestmentRepository_ListByUser(t *testing.T) {
	repo := NewInvestmentRepository(memory.NewRecordStore(), zerolog.Nop())

	for i, userID := range []string{"user-1", "user-2", "user-1"} {
		inv := &domain.Investment{
			ID:     "inv-" + string(rune('a'+i)),
			UserID: userID,
			Amount: decimal.NewFromInt(100),
			Status: domain.InvestmentPending,
		}
		if err := repo.Append(context.Background(), inv); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	list, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 investments, got %d", len(list))
	}

	empty, err := repo.ListByUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list, got %d", len(empty))
	}
}
