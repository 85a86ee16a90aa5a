// Package catalog bundles the pre-authored role data shipped with the
// binary: full roadmap documents plus the trending/other role listings the
// explore pages serve verbatim.
package catalog

import (
	"embed"
	"encoding/json"

	"skillmapper/internal/domain/roadmap"
)

//go:embed data/*.json
var files embed.FS

func RoleDetails() ([]roadmap.StaticRoadmap, error) {
	b, err := files.ReadFile("data/role_details.json")
	if err != nil {
		return nil, err
	}
	var docs []roadmap.StaticRoadmap
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindRoleDetail returns the catalog entry for a roadmap id, reporting
// whether one exists.
func FindRoleDetail(roadmapID int) (roadmap.StaticRoadmap, bool, error) {
	docs, err := RoleDetails()
	if err != nil {
		return roadmap.StaticRoadmap{}, false, err
	}
	for _, d := range docs {
		if d.RoadmapID == roadmapID {
			return d, true, nil
		}
	}
	return roadmap.StaticRoadmap{}, false, nil
}

func TrendingRoles() (json.RawMessage, error) {
	return files.ReadFile("data/trending_roles.json")
}

func OtherRoles() (json.RawMessage, error) {
	return files.ReadFile("data/other_roles.json")
}
