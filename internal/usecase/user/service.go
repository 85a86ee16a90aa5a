package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"skillmapper/internal/config"
	"skillmapper/internal/domain/user"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownSkill = errors.New("skill not in catalog")
	ErrUnknownGoal  = errors.New("goal not in catalog")
	ErrInternal     = errors.New("internal error")
)

type CompleteProfileInput struct {
	TargetRole     string
	Skills         []string
	TimeCanGive    string
	Designation    string
	Bio            string
	GithubUsername string
	AvatarURL      string
}

type EditProfileInput struct {
	Designation      *string
	Bio              *string
	AvatarURL        *string
	GithubUsername   *string
	LinkedinUsername *string
	TwitterLink      *string
	Skills           []string
	Goal             *string
}

type Service struct {
	users   user.Repository
	catalog config.CatalogConfig
}

func NewService(users user.Repository, catalog config.CatalogConfig) *Service {
	return &Service{users: users, catalog: catalog}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, err
		}
		return user.User{}, ErrInternal
	}
	return sanitize(usr), nil
}

// CompleteProfile records the onboarding form: target role, skill set, time
// commitment and designation are required; the rest is optional.
func (s *Service) CompleteProfile(ctx context.Context, userID uuid.UUID, in CompleteProfileInput) (user.User, error) {
	if strings.TrimSpace(in.TargetRole) == "" ||
		len(in.Skills) == 0 ||
		strings.TrimSpace(in.TimeCanGive) == "" ||
		strings.TrimSpace(in.Designation) == "" {
		return user.User{}, ErrInvalidInput
	}

	if !contains(s.catalog.AllowedGoals, in.TargetRole) {
		return user.User{}, ErrUnknownGoal
	}
	for _, sk := range in.Skills {
		if !contains(s.catalog.AllowedSkills, sk) {
			return user.User{}, ErrUnknownSkill
		}
	}

	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, err
		}
		return user.User{}, ErrInternal
	}

	usr.Goal = in.TargetRole
	usr.TimeCommitment = in.TimeCanGive
	usr.Designation = strings.TrimSpace(in.Designation)
	usr.Bio = strings.TrimSpace(in.Bio)
	usr.GithubUsername = strings.TrimSpace(in.GithubUsername)
	if strings.TrimSpace(in.AvatarURL) != "" {
		usr.AvatarURL = strings.TrimSpace(in.AvatarURL)
	}
	usr.Skills = mergeSkills(usr.Skills, in.Skills)
	usr.IsProfileCompleted = true

	if err := s.users.Update(ctx, usr); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, err
		}
		return user.User{}, ErrInternal
	}

	return sanitize(usr), nil
}

func (s *Service) EditProfile(ctx context.Context, userID uuid.UUID, in EditProfileInput) (user.User, error) {
	if in.Goal != nil && *in.Goal != "" && !contains(s.catalog.AllowedGoals, *in.Goal) {
		return user.User{}, ErrUnknownGoal
	}
	for _, sk := range in.Skills {
		if !contains(s.catalog.AllowedSkills, sk) {
			return user.User{}, ErrUnknownSkill
		}
	}

	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, err
		}
		return user.User{}, ErrInternal
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&usr.Designation, in.Designation)
	set(&usr.Bio, in.Bio)
	set(&usr.AvatarURL, in.AvatarURL)
	set(&usr.GithubUsername, in.GithubUsername)
	set(&usr.LinkedinUsername, in.LinkedinUsername)
	set(&usr.TwitterLink, in.TwitterLink)
	if in.Goal != nil {
		usr.Goal = *in.Goal
	}
	if len(in.Skills) > 0 {
		usr.Skills = mergeSkills(usr.Skills, in.Skills)
	}
	usr.IsProfileEdited = true

	if err := s.users.Update(ctx, usr); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, err
		}
		return user.User{}, ErrInternal
	}

	return sanitize(usr), nil
}

// mergeSkills unions the new skills into the existing set, keeping order of
// first appearance.
func mergeSkills(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, s := range existing {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, s := range incoming {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func sanitize(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
