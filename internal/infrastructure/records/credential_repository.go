package records

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/assetbridge/investment-platform/internal/core/ports"
)

// CredentialRepository is the durable email → bcrypt-hash map. One entry per
// email; setting an existing email overwrites its hash.
type CredentialRepository struct {
	store ports.RecordStore
	log   zerolog.Logger
}

func NewCredentialRepository(store ports.RecordStore, log zerolog.Logger) *CredentialRepository {
	return &CredentialRepository{store: store, log: log}
}

func (r *CredentialRepository) Get(ctx context.Context, email string) (string, bool, error) {
	creds, err := r.load(ctx)
	if err != nil {
		return "", false, err
	}
	hash, ok := creds[email]
	return hash, ok, nil
}

func (r *CredentialRepository) Set(ctx context.Context, email, hash string) error {
	creds, err := r.load(ctx)
	if err != nil {
		return err
	}
	if creds == nil {
		creds = make(map[string]string, 1)
	}
	creds[email] = hash
	return writeJSON(ctx, r.store, keyCredentials, creds)
}

func (r *CredentialRepository) load(ctx context.Context) (map[string]string, error) {
	var creds map[string]string
	if err := readJSON(ctx, r.store, keyCredentials, &creds, r.log); err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	return creds, nil
}
