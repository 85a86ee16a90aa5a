package roadmap

import (
	"context"

	"github.com/google/uuid"
)

// PersonalRoadmap is the normalized AI-generated learning path persisted one
// per user. The owning user id is the document key and is never serialized
// back to clients.
type PersonalRoadmap struct {
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Role              string           `json:"role"`
	Salary            string           `json:"salary"`
	CurrentSkills     []string         `json:"currentSkills"`
	Growth            string           `json:"growth"`
	PersonalisedSteps []PersonalPhase  `json:"personalisedSteps"`
	CapstoneProject   CapstoneProject  `json:"capstoneProject"`
}

type PersonalPhase struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	EstimatedTime  string     `json:"estimatedTime"`
	Difficulty     string     `json:"difficulty"`
	RequiredSkills []string   `json:"requiredSkills"`
	TopicNames     []Topic    `json:"topicNames"`
	Resources      []Resource `json:"resources"`
}

type CapstoneProject struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	EstimatedTime string     `json:"estimatedTime"`
	SkillsUsed    []string   `json:"skillsUsed"`
	TopicNames    []Topic    `json:"topicNames"`
	Resources     []Resource `json:"resources"`
}

type Resource struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Link string `json:"link"`
}

type PersonalRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (PersonalRoadmap, error)
	Upsert(ctx context.Context, userID uuid.UUID, doc PersonalRoadmap) error
}
