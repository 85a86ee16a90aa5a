package dto

import (
	"time"

	"github.com/google/uuid"

	"skillmapper/internal/domain/user"
)

// UserResponse is the client-facing user shape. The password hash is never
// present in the domain value by the time it reaches a handler, and is not
// part of this shape at all.
type UserResponse struct {
	ID                 uuid.UUID `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	Designation        string    `json:"designation"`
	Bio                string    `json:"bio"`
	Avatar             string    `json:"avatar"`
	GithubUsername     string    `json:"githubUsername"`
	LinkedinUsername   string    `json:"linkedinUsername"`
	TwitterLink        string    `json:"twitterLink"`
	Goal               string    `json:"goal"`
	Time               string    `json:"time"`
	Skills             []string  `json:"skills"`
	CurrentStreak      int       `json:"currentStreak"`
	IsProfileCompleted bool      `json:"isProfileCompleted"`
	IsProfileEdited    bool      `json:"isProfileEdited"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func NewUserResponse(u user.User) UserResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Email:              u.Email,
		Designation:        u.Designation,
		Bio:                u.Bio,
		Avatar:             u.AvatarURL,
		GithubUsername:     u.GithubUsername,
		LinkedinUsername:   u.LinkedinUsername,
		TwitterLink:        u.TwitterLink,
		Goal:               u.Goal,
		Time:               u.TimeCommitment,
		Skills:             skills,
		CurrentStreak:      u.CurrentStreak,
		IsProfileCompleted: u.IsProfileCompleted,
		IsProfileEdited:    u.IsProfileEdited,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
