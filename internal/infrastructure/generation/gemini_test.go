package generation

import (
	"errors"
	"testing"
)

const validOutput = `{
	"title": "Path to Backend Developer",
	"description": "A tailored plan",
	"role": "Backend Developer",
	"salary": "12-20 LPA",
	"currentSkills": ["JavaScript"],
	"growth": "High",
	"personalisedSteps": [{
		"title": "Foundations",
		"description": "Core concepts",
		"estimatedTime": "4 weeks",
		"difficulty": "Beginner",
		"requiredSkills": ["JavaScript"],
		"topicNames": ["HTTP", "SQL"],
		"resources": [{"name": "Docs", "link": "https://example.com"}]
	}],
	"capstoneProject": {
		"title": "API Project",
		"description": "Build an API",
		"estimatedTime": "2 weeks",
		"skillsUsed": ["SQL"],
		"topicNames": ["Design"],
		"resources": []
	}
}`

func TestDecodeRoadmap_Valid(t *testing.T) {
	g, err := DecodeRoadmap(validOutput)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if g.Role != "Backend Developer" {
		t.Fatalf("unexpected role %q", g.Role)
	}
	if len(g.PersonalisedSteps) != 1 {
		t.Fatalf("expected 1 phase, got %d", len(g.PersonalisedSteps))
	}
	if g.PersonalisedSteps[0].TopicNames[0] != "HTTP" {
		t.Fatalf("unexpected topic %q", g.PersonalisedSteps[0].TopicNames[0])
	}
}

func TestDecodeRoadmap_StripsCodeFence(t *testing.T) {
	fenced := "```json\n" + validOutput + "\n```"
	g, err := DecodeRoadmap(fenced)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if g.Title == "" {
		t.Fatalf("expected decoded document")
	}
}

func TestDecodeRoadmap_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":      "the model rambled instead of returning json",
		"empty phases":  `{"title": "T", "role": "R", "personalisedSteps": [], "capstoneProject": {"title": "C"}}`,
		"missing title": `{"role": "R", "personalisedSteps": [{"title": "P"}], "capstoneProject": {"title": "C"}}`,
		"no capstone":   `{"title": "T", "role": "R", "personalisedSteps": [{"title": "P"}], "capstoneProject": {}}`,
	}
	for name, in := range cases {
		if _, err := DecodeRoadmap(in); !errors.Is(err, ErrBadOutput) {
			t.Fatalf("%s: expected ErrBadOutput, got %v", name, err)
		}
	}
}

func TestStripCodeFence_PlainText(t *testing.T) {
	if got := stripCodeFence(`{"a":1}`); got != `{"a":1}` {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := stripCodeFence("```\n{\"a\":1}\n```"); got != `{"a":1}` {
		t.Fatalf("expected fence stripped, got %q", got)
	}
}
