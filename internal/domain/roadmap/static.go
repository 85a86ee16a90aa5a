package roadmap

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("roadmap not found")
	ErrAlreadySeeded = errors.New("roadmap already seeded")
)

// StaticRoadmap is a pre-authored catalog entry for a named role. Documents
// are loaded from the bundled catalog and are read-only afterwards.
type StaticRoadmap struct {
	RoadmapID   int           `json:"roadmapId"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Salary      string        `json:"salary"`
	Demand      string        `json:"demand"`
	Growth      string        `json:"growth"`
	TimeToLearn string        `json:"timeToLearn"`
	Overview    string        `json:"overview"`
	Roadmap     []StaticPhase `json:"roadmap"`
	Skills      []string      `json:"skills"`
	Companies   []string      `json:"companies"`
}

type StaticPhase struct {
	ID          int              `json:"id"`
	Phase       string           `json:"phase"`
	Title       string           `json:"title"`
	Duration    string           `json:"duration"`
	Difficulty  string           `json:"difficulty"`
	Description string           `json:"description"`
	Topics      []Topic          `json:"topics"`
	Resources   []StaticResource `json:"resources"`
	Projects    []Project        `json:"projects"`
}

type Topic struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type StaticResource struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Provider string `json:"provider"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Duration    string   `json:"duration"`
	Skills      []string `json:"skills"`
}

type StaticRepository interface {
	Insert(ctx context.Context, doc StaticRoadmap) error
	GetByID(ctx context.Context, roadmapID int) (StaticRoadmap, error)
	Exists(ctx context.Context, roadmapID int) (bool, error)
}
