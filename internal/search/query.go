package search

import (
	"strings"
	"unicode"
)

func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	input = strings.ToLower(input)

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false

	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			lastWasSpace = false
			continue
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
			continue
		}
		// drop all other characters
	}

	out := strings.TrimSpace(b.String())
	out = strings.Join(strings.Fields(out), " ")
	return out
}

// ExpandQuery returns the normalized query plus synonym variants, deduplicated
// in insertion order. The first element is always the normalized query itself.
func ExpandQuery(normalized string) []string {
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return []string{}
	}

	out := make([]string, 0, 10)
	seen := make(map[string]struct{}, 10)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(normalized)

	for _, syn := range GetSynonyms(normalized) {
		add(syn)
	}

	words := strings.Fields(normalized)

	// Single-token queries like "fullstack" also match spaced synonym keys.
	if len(words) == 1 {
		single := words[0]
		for k, syns := range Synonyms {
			if !strings.Contains(k, " ") {
				continue
			}
			if strings.ReplaceAll(k, " ", "") != single {
				continue
			}
			add(k)
			for _, syn := range syns {
				add(syn)
			}
			break
		}
	}

	if len(words) >= 2 {
		for _, syn := range GetSynonyms(words[0]) {
			add(strings.TrimSpace(syn + " " + strings.Join(words[1:], " ")))
		}
	}

	return out
}
