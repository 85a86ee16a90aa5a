package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"skillmapper/internal/domain/user"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	byUsername map[string]user.User
	emails     map[string]bool
	created    []user.User
	createErr  error
	lookupErr  error
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, u)
	return nil
}

func (m *mockUserRepo) GetByID(context.Context, uuid.UUID) (user.User, error) {
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	if m.lookupErr != nil {
		return user.User{}, m.lookupErr
	}
	if u, ok := m.byUsername[username]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return m.emails[email], nil
}

func (m *mockUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := m.byUsername[username]
	return ok, nil
}

func (m *mockUserRepo) Update(context.Context, user.User) error { return nil }

func TestService_Register_Success(t *testing.T) {
	repo := &mockUserRepo{byUsername: map[string]user.User{}, emails: map[string]bool{}}
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "  Alice  ",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Username != "alice" {
		t.Fatalf("expected lowercased username, got %q", u.Username)
	}
	if u.PasswordHash != "" {
		t.Fatalf("expected password hash stripped from result")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 create, got %d", len(repo.created))
	}
	if repo.created[0].PasswordHash == "supersecret" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created[0].PasswordHash), []byte("supersecret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestService_Register_InvalidInput(t *testing.T) {
	svc := NewService(&mockUserRepo{byUsername: map[string]user.User{}, emails: map[string]bool{}})

	cases := []RegisterInput{
		{Username: "a", Email: "a@example.com", Password: "longenough"},
		{Username: "alice", Email: "not-an-email", Password: "longenough"},
		{Username: "alice", Email: "a@example.com", Password: "abc"},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		byUsername: map[string]user.User{},
		emails:     map[string]bool{"alice@example.com": true},
	}
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepo{
		byUsername: map[string]user.User{"alice": {Username: "alice"}},
		emails:     map[string]bool{},
	}
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "Alice",
		Email:    "other@example.com",
		Password: "supersecret",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	repo := &mockUserRepo{
		byUsername: map[string]user.User{"alice": {
			ID:           uuid.New(),
			Username:     "alice",
			PasswordHash: string(hash),
		}},
	}
	svc := NewService(repo)

	u, err := svc.Login(context.Background(), LoginInput{Username: "Alice", Password: "supersecret"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Username != "alice" {
		t.Fatalf("unexpected username %q", u.Username)
	}
	if u.PasswordHash != "" {
		t.Fatalf("expected password hash stripped from result")
	}
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	repo := &mockUserRepo{byUsername: map[string]user.User{"alice": {PasswordHash: string(hash)}}}
	svc := NewService(repo)

	_, err = svc.Login(context.Background(), LoginInput{Username: "alice", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_Login_UnknownUser(t *testing.T) {
	svc := NewService(&mockUserRepo{byUsername: map[string]user.User{}})

	_, err := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "whatever"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
