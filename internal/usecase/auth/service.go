package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skillmapper/internal/domain/user"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

const (
	minUsernameLen = 2
	minPasswordLen = 5
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	username := normalizeUsername(in.Username)
	email := strings.TrimSpace(in.Email)

	if len(username) < minUsernameLen {
		return user.User{}, ErrInvalidInput
	}
	if !emailRe.MatchString(email) {
		return user.User{}, ErrInvalidInput
	}
	if len(in.Password) < minPasswordLen {
		return user.User{}, ErrInvalidInput
	}

	if exists, err := s.users.ExistsByEmail(ctx, email); err != nil {
		return user.User{}, ErrInternal
	} else if exists {
		return user.User{}, ErrUserExists
	}
	if exists, err := s.users.ExistsByUsername(ctx, username); err != nil {
		return user.User{}, ErrInternal
	} else if exists {
		return user.User{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Skills:       []string{},
	}

	if err := s.users.Create(ctx, u); err != nil {
		// Racing registrations hit the unique constraints; re-check so the
		// caller sees a duplicate rather than an opaque failure.
		if exists, exErr := s.users.ExistsByEmail(ctx, email); exErr == nil && exists {
			return user.User{}, ErrUserExists
		}
		if exists, exErr := s.users.ExistsByUsername(ctx, username); exErr == nil && exists {
			return user.User{}, ErrUserExists
		}
		return user.User{}, ErrInternal
	}

	return sanitize(u), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	username := normalizeUsername(in.Username)
	if username == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitize(u), nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func sanitize(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
