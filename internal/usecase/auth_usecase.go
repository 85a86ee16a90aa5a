package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"skillmapper/internal/domain/user"
	"skillmapper/internal/pkg/jwt"
	ucauth "skillmapper/internal/usecase/auth"
)

var ErrInternal = errors.New("internal error")

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error)
	GetUser(ctx context.Context, userID uuid.UUID) (user.User, error)
}

type Auth struct {
	authSvc *ucauth.Service
	users   user.Repository
	jwt     jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(users), users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, "", err
	}

	token, err := u.jwt.Generate(usr.ID)
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	return usr, token, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, "", err
	}

	token, err := u.jwt.Generate(usr.ID)
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	return usr, token, nil
}

func (u *Auth) GetUser(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, err
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}
