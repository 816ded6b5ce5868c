package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/assetbridge/investment-platform/internal/core/domain"
)

type stubSessionRepo struct {
	sessions map[string]*domain.Session
	saveErr  error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *stubSessionRepo) Save(_ context.Context, session *domain.Session) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	clone := *session
	r.sessions[session.ID] = &clone
	return nil
}

func (r *stubSessionRepo) Find(_ context.Context, id string) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) All(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func testUser() *domain.User {
	return &domain.User{
		ID:     "user-1",
		Email:  "alice@example.com",
		Role:   domain.RoleInvestor,
		Status: domain.UserStatusActive,
	}
}

func TestSessionService_Create(t *testing.T) {
	repo := newStubSessionRepo()
	svc := NewSessionService(repo, newStubUserRepo(testUser()), "secret", 24*time.Hour, zerolog.Nop())

	loginTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return loginTime }

	session, token, err := svc.Create(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !session.ExpiresAt.Equal(loginTime.Add(24 * time.Hour)) {
		t.Fatalf("unexpected expiry: %v", session.ExpiresAt)
	}
	if _, ok := repo.sessions[session.ID]; !ok {
		t.Fatalf("session not persisted")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return loginTime }))
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sid"] != session.ID {
		t.Fatalf("expected sid %s, got %v", session.ID, claims["sid"])
	}
	if claims["role"] != string(domain.RoleInvestor) {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}
}

func TestSessionService_ExpiryBoundary(t *testing.T) {
	repo := newStubSessionRepo()
	svc := NewSessionService(repo, newStubUserRepo(testUser()), "secret", 24*time.Hour, zerolog.Nop())

	loginTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return loginTime }
	session, _, err := svc.Create(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Just before expiry: still authenticated.
	svc.now = func() time.Time { return loginTime.Add(24*time.Hour - time.Second) }
	if !svc.IsActive(context.Background(), session.ID) {
		t.Fatalf("expected session active before expiry")
	}

	// Exactly at expiry: no longer authenticated.
	svc.now = func() time.Time { return loginTime.Add(24 * time.Hour) }
	if svc.IsActive(context.Background(), session.ID) {
		t.Fatalf("expected session inactive at expiry")
	}

	// After expiry: still not authenticated.
	svc.now = func() time.Time { return loginTime.Add(25 * time.Hour) }
	if svc.IsActive(context.Background(), session.ID) {
		t.Fatalf("expected session inactive after expiry")
	}
}

func TestSessionService_IsActive_UnknownSession(t *testing.T) {
	svc := NewSessionService(newStubSessionRepo(), newStubUserRepo(), "secret", 24*time.Hour, zerolog.Nop())
	if svc.IsActive(context.Background(), "ghost") {
		t.Fatalf("expected unknown session to read inactive")
	}
}

func TestSessionService_Current(t *testing.T) {
	repo := newStubSessionRepo()
	users := newStubUserRepo(testUser())
	svc := NewSessionService(repo, users, "secret", 24*time.Hour, zerolog.Nop())

	session, _, err := svc.Create(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	user, err := svc.Current(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if user.ID != "user-1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestSessionService_Current_UserNoLongerResolves(t *testing.T) {
	repo := newStubSessionRepo()
	users := newStubUserRepo(testUser())
	svc := NewSessionService(repo, users, "secret", 24*time.Hour, zerolog.Nop())

	session, _, err := svc.Create(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Simulate the user set being reset underneath the session.
	delete(users.users, "user-1")

	if _, err := svc.Current(context.Background(), session.ID); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestSessionService_Destroy(t *testing.T) {
	repo := newStubSessionRepo()
	svc := NewSessionService(repo, newStubUserRepo(testUser()), "secret", 24*time.Hour, zerolog.Nop())

	session, _, err := svc.Create(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Destroy(context.Background(), session.ID); err != nil {
		t.Fatalf("Destroy returned error: %v", err)
	}
	if svc.IsActive(context.Background(), session.ID) {
		t.Fatalf("expected destroyed session to be inactive")
	}

	// Destroying an absent session is a no-op.
	if err := svc.Destroy(context.Background(), session.ID); err != nil {
		t.Fatalf("second Destroy returned error: %v", err)
	}
}
