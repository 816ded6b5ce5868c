package records

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

// ResetTokenRepository stores password-reset grants keyed by token value.
// Consumed tokens are retained with Used=true until the housekeeping sweeper
// prunes them.
type ResetTokenRepository struct {
	store ports.RecordStore
	log   zerolog.Logger
}

func NewResetTokenRepository(store ports.RecordStore, log zerolog.Logger) *ResetTokenRepository {
	return &ResetTokenRepository{store: store, log: log}
}

func (r *ResetTokenRepository) Save(ctx context.Context, token *domain.ResetToken) error {
	tokens, err := r.load(ctx)
	if err != nil {
		return err
	}
	if tokens == nil {
		tokens = make(map[string]domain.ResetToken, 1)
	}
	tokens[token.Token] = *token
	return writeJSON(ctx, r.store, keyResetTokens, tokens)
}

func (r *ResetTokenRepository) Find(ctx context.Context, token string) (*domain.ResetToken, error) {
	tokens, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := tokens[token]
	if !ok {
		return nil, domain.ErrResetTokenInvalid
	}
	return &rec, nil
}

func (r *ResetTokenRepository) MarkUsed(ctx context.Context, token string) error {
	tokens, err := r.load(ctx)
	if err != nil {
		return err
	}
	rec, ok := tokens[token]
	if !ok {
		return domain.ErrResetTokenInvalid
	}
	rec.Used = true
	tokens[token] = rec
	return writeJSON(ctx, r.store, keyResetTokens, tokens)
}

// PruneExpired removes tokens that are used or past expiry as of now.
func (r *ResetTokenRepository) PruneExpired(ctx context.Context, now time.Time) (int, error) {
	tokens, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	pruned := 0
	for key, rec := range tokens {
		if rec.Used || rec.Expired(now) {
			delete(tokens, key)
			pruned++
		}
	}
	if pruned == 0 {
		return 0, nil
	}
	if err := writeJSON(ctx, r.store, keyResetTokens, tokens); err != nil {
		return 0, err
	}
	return pruned, nil
}

func (r *ResetTokenRepository) load(ctx context.Context) (map[string]domain.ResetToken, error) {
	var tokens map[string]domain.ResetToken
	if err := readJSON(ctx, r.store, keyResetTokens, &tokens, r.log); err != nil {
		return nil, fmt.Errorf("load reset tokens: %w", err)
	}
	return tokens, nil
}
