package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string

	Designation      string
	Bio              string
	AvatarURL        string
	GithubUsername   string
	LinkedinUsername string
	TwitterLink      string

	Goal           string
	TimeCommitment string
	Skills         []string

	CurrentStreak      int
	IsProfileCompleted bool
	IsProfileEdited    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
