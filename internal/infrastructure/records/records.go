// Package records implements the repository ports on top of the key-value
// RecordStore. Each collection is stored wholesale under a fixed key as a
// single JSON document and read-modify-written as a unit: there is no per-item
// update, no optimistic versioning, and concurrent writers race with
// last-write-wins semantics at key granularity.
package records

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/assetbridge/investment-platform/internal/core/ports"
)

// Fixed record-store keys. Changing one orphans the data stored under it.
const (
	keyRegisteredUsers = "users:registered"
	keyCredentials     = "auth:credentials"
	keyResetTokens     = "auth:reset_tokens"
	keyInvestments     = "investments"
	keyNotifications   = "notifications"
)

// readJSON loads and decodes the value at key into v. Absent keys and
// unparsable payloads both read as "absent" — the store fails open, leaving v
// at its zero value. Only transport errors are returned.
func readJSON(ctx context.Context, store ports.RecordStore, key string, v any, log zerolog.Logger) error {
	raw, err := store.Read(ctx, key)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding unparsable record")
	}
	return nil
}

// writeJSON encodes v and overwrites the value at key wholesale.
func writeJSON(ctx context.Context, store ports.RecordStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Write(ctx, key, raw)
}
