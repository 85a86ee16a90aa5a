package progress

import (
	"errors"
	"strings"
)

// Action is the toggle direction for a completion mark.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

var ErrInvalidAction = errors.New("invalid progress action")

func ParseAction(s string) (Action, error) {
	switch Action(strings.TrimSpace(s)) {
	case ActionAdd:
		return ActionAdd, nil
	case ActionRemove:
		return ActionRemove, nil
	default:
		return "", ErrInvalidAction
	}
}

// TopicRef identifies a topic within a roadmap phase.
type TopicRef struct {
	PhaseID int `json:"phaseId"`
	TopicID int `json:"topicId"`
}

// ProjectRef identifies a project within a static roadmap phase.
type ProjectRef struct {
	PhaseID   int `json:"phaseId"`
	ProjectID int `json:"projectId"`
}

// CapstoneRef identifies a topic of the personalized roadmap's capstone.
type CapstoneRef struct {
	TopicID int `json:"topicId"`
}

// StaticRecord is a user's completion state for one static roadmap.
type StaticRecord struct {
	RoadmapID         int          `json:"roadmapId"`
	CompletedTopics   []TopicRef   `json:"completedTopics"`
	CompletedProjects []ProjectRef `json:"completedProjects"`
}

// PersonalRecord is a user's completion state for their generated roadmap.
type PersonalRecord struct {
	CompletedTopics         []TopicRef    `json:"completedTopics"`
	CompletedCapstoneTopics []CapstoneRef `json:"completedCapstoneTopics"`
}
