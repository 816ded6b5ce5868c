package records

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/assetbridge/investment-platform/internal/core/domain"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

// UserRepository merges an immutable in-process seed set with the durable
// registered set at every read. The seed slice is never mutated: updates to
// seed users land in the registered set and shadow the seed entry by id.
type UserRepository struct {
	store ports.RecordStore
	seed  []domain.User
	log   zerolog.Logger
}

func NewUserRepository(store ports.RecordStore, seed []domain.User, log zerolog.Logger) *UserRepository {
	return &UserRepository{store: store, seed: seed, log: log}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.merged(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return cloneUser(&users[i]), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.merged(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return cloneUser(&users[i]), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	users, err := r.merged(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Email == user.Email {
			return domain.ErrEmailTaken
		}
	}

	registered, err := r.registered(ctx)
	if err != nil {
		return err
	}
	registered = append(registered, *cloneUser(user))
	return writeJSON(ctx, r.store, keyRegisteredUsers, registered)
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	registered, err := r.registered(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range registered {
		if registered[i].ID == user.ID {
			registered[i] = *cloneUser(user)
			replaced = true
			break
		}
	}
	if !replaced {
		// Seed users get their first mutation appended here, shadowing the
		// seed entry from then on.
		if !r.inSeed(user.ID) {
			return domain.ErrUserNotFound
		}
		registered = append(registered, *cloneUser(user))
	}

	return writeJSON(ctx, r.store, keyRegisteredUsers, registered)
}

func (r *UserRepository) All(ctx context.Context) ([]domain.User, error) {
	return r.merged(ctx)
}

// registered loads the durable registered set.
func (r *UserRepository) registered(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := readJSON(ctx, r.store, keyRegisteredUsers, &users, r.log); err != nil {
		return nil, fmt.Errorf("load registered users: %w", err)
	}
	return users, nil
}

// merged returns seed ∪ registered, with registered entries shadowing seed
// entries that share an id. The result is safe for the caller to mutate.
func (r *UserRepository) merged(ctx context.Context) ([]domain.User, error) {
	registered, err := r.registered(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(r.seed))
	out := make([]domain.User, 0, len(r.seed)+len(registered))
	for i := range r.seed {
		byID[r.seed[i].ID] = len(out)
		out = append(out, *cloneUser(&r.seed[i]))
	}
	for i := range registered {
		if pos, ok := byID[registered[i].ID]; ok {
			out[pos] = registered[i]
			continue
		}
		out = append(out, registered[i])
	}
	return out, nil
}

func (r *UserRepository) inSeed(id string) bool {
	for i := range r.seed {
		if r.seed[i].ID == id {
			return true
		}
	}
	return false
}

// cloneUser deep-copies a user so callers never hold live references into the
// seed set.
func cloneUser(u *domain.User) *domain.User {
	clone := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		clone.LastLogin = &t
	}
	if u.Preferences != nil {
		p := *u.Preferences
		clone.Preferences = &p
	}
	if u.Branding != nil {
		b := *u.Branding
		clone.Branding = &b
	}
	return &clone
}
