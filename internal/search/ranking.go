package search

import (
	"sort"
	"strings"

	"skillmapper/internal/domain/roadmap"
)

type RoleScore struct {
	RoadmapID int
	Score     float64
}

// RankRoles scores catalog entries against the query variants and returns
// them best-first, dropping entries that match nothing. Ties break on
// roadmap id so results are stable.
func RankRoles(roles []roadmap.StaticRoadmap, queryVariants []string) []roadmap.StaticRoadmap {
	if len(roles) == 0 || len(queryVariants) == 0 {
		return []roadmap.StaticRoadmap{}
	}

	scores := make([]RoleScore, 0, len(roles))
	byID := make(map[int]roadmap.StaticRoadmap, len(roles))
	for _, role := range roles {
		s := scoreRole(role, queryVariants)
		if s <= 0 {
			continue
		}
		scores = append(scores, RoleScore{RoadmapID: role.RoadmapID, Score: s})
		byID[role.RoadmapID] = role
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].RoadmapID < scores[j].RoadmapID
	})

	out := make([]roadmap.StaticRoadmap, 0, len(scores))
	for _, sc := range scores {
		out = append(out, byID[sc.RoadmapID])
	}
	return out
}

func scoreRole(role roadmap.StaticRoadmap, queryVariants []string) float64 {
	name := strings.ToLower(role.Name)
	desc := strings.ToLower(role.Description)
	skills := strings.ToLower(strings.Join(role.Skills, " "))

	score := 0.0
	for _, v := range queryVariants {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if name != "" && strings.Contains(name, v) {
			score += 3
		}
		if skills != "" && strings.Contains(skills, v) {
			score += 2
		}
		if desc != "" && strings.Contains(desc, v) {
			score += 1
		}
		if score >= 10 {
			return 10
		}
	}
	return score
}
