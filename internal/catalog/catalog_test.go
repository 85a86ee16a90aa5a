package catalog

import (
	"encoding/json"
	"testing"
)

func TestRoleDetails_Parses(t *testing.T) {
	docs, err := RoleDetails()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(docs) == 0 {
		t.Fatalf("expected bundled roadmaps")
	}
	for _, doc := range docs {
		if doc.RoadmapID <= 0 {
			t.Fatalf("roadmap %q: invalid id %d", doc.Name, doc.RoadmapID)
		}
		if doc.Name == "" {
			t.Fatalf("roadmap %d: empty name", doc.RoadmapID)
		}
		if len(doc.Roadmap) == 0 {
			t.Fatalf("roadmap %d: no phases", doc.RoadmapID)
		}
	}
}

func TestFindRoleDetail(t *testing.T) {
	doc, found, err := FindRoleDetail(1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !found {
		t.Fatalf("expected roadmap 1 in catalog")
	}
	if doc.RoadmapID != 1 {
		t.Fatalf("unexpected id %d", doc.RoadmapID)
	}

	if _, found, err := FindRoleDetail(9999); err != nil || found {
		t.Fatalf("expected miss for unknown id, found=%v err=%v", found, err)
	}
}

func TestTrendingAndOtherRoles_ValidJSON(t *testing.T) {
	for name, fn := range map[string]func() (json.RawMessage, error){
		"trending": TrendingRoles,
		"other":    OtherRoles,
	} {
		raw, err := fn()
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", name, err)
		}
		var out []map[string]any
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("%s: payload is not a json array: %v", name, err)
		}
		if len(out) == 0 {
			t.Fatalf("%s: expected entries", name)
		}
	}
}
