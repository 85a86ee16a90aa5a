package search

import (
	"testing"

	"skillmapper/internal/domain/roadmap"
)

func TestNormalizeQuery(t *testing.T) {
	cases := map[string]string{
		"  Frontend Developer ": "frontend developer",
		"BACK-END!!":            "backend",
		"":                      "",
		"   ":                   "",
		"full  stack   dev":     "full stack dev",
	}
	for in, want := range cases {
		if got := NormalizeQuery(in); got != want {
			t.Fatalf("NormalizeQuery(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExpandQuery_Synonyms(t *testing.T) {
	variants := ExpandQuery("frontend")
	if len(variants) == 0 || variants[0] != "frontend" {
		t.Fatalf("expected original query first, got %v", variants)
	}

	found := false
	for _, v := range variants {
		if v == "ui developer" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected synonym expansion, got %v", variants)
	}
}

func TestExpandQuery_JoinedToken(t *testing.T) {
	variants := ExpandQuery("fullstack")
	found := false
	for _, v := range variants {
		if v == "full stack" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected spaced variant for joined token, got %v", variants)
	}
}

func TestRankRoles_OrdersByScore(t *testing.T) {
	roles := []roadmap.StaticRoadmap{
		{RoadmapID: 1, Name: "Frontend Developer", Skills: []string{"React", "CSS"}},
		{RoadmapID: 2, Name: "Backend Developer", Skills: []string{"Go", "PostgreSQL"}},
		{RoadmapID: 3, Name: "Data Scientist", Description: "works with backend teams"},
	}

	ranked := RankRoles(roles, ExpandQuery("backend"))
	if len(ranked) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(ranked))
	}
	if ranked[0].RoadmapID != 2 {
		t.Fatalf("expected name match first, got roadmap %d", ranked[0].RoadmapID)
	}
	if ranked[1].RoadmapID != 3 {
		t.Fatalf("expected description match second, got roadmap %d", ranked[1].RoadmapID)
	}
}

func TestRankRoles_NoMatch(t *testing.T) {
	roles := []roadmap.StaticRoadmap{{RoadmapID: 1, Name: "Frontend Developer"}}
	ranked := RankRoles(roles, ExpandQuery("astronomy"))
	if len(ranked) != 0 {
		t.Fatalf("expected no matches, got %d", len(ranked))
	}
}
