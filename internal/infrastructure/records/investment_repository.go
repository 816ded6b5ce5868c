package records

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

// InvestmentRepository is the append-mostly investment collection. Records are
// mutated in place and never deleted.
type InvestmentRepository struct {
	store ports.RecordStore
	log   zerolog.Logger
}

func NewInvestmentRepository(store ports.RecordStore, log zerolog.Logger) *InvestmentRepository {
	return &InvestmentRepository{store: store, log: log}
}

func (r *InvestmentRepository) Append(ctx context.Context, inv *domain.Investment) error {
	investments, err := r.load(ctx)
	if err != nil {
		return err
	}
	investments = append(investments, *inv)
	return writeJSON(ctx, r.store, keyInvestments, investments)
}

func (r *InvestmentRepository) FindByID(ctx context.Context, id string) (*domain.Investment, error) {
	investments, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range investments {
		if investments[i].ID == id {
			inv := investments[i]
			return &inv, nil
		}
	}
	return nil, domain.ErrInvestmentNotFound
}

func (r *InvestmentRepository) Update(ctx context.Context, inv *domain.Investment) error {
	investments, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range investments {
		if investments[i].ID == inv.ID {
			investments[i] = *inv
			return writeJSON(ctx, r.store, keyInvestments, investments)
		}
	}
	return domain.ErrInvestmentNotFound
}

func (r *InvestmentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Investment, error) {
	investments, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Investment, 0)
	for i := range investments {
		if investments[i].UserID == userID {
			out = append(out, investments[i])
		}
	}
	return out, nil
}

func (r *InvestmentRepository) load(ctx context.Context) ([]domain.Investment, error) {
	var investments []domain.Investment
	if err := readJSON(ctx, r.store, keyInvestments, &investments, r.log); err != nil {
		return nil, fmt.Errorf("load investments: %w", err)
	}
	return investments, nil
}
