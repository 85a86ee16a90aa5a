package search

var Synonyms = map[string][]string{
	"frontend":  {"front end", "frontend developer", "ui developer"},
	"backend":   {"back end", "backend developer", "server developer"},
	"fullstack": {"full stack", "fullstack developer"},
	"devops":    {"dev ops", "devops engineer", "sre"},
	"ml":        {"machine learning", "ml engineer"},
	"data":      {"data analyst", "data scientist", "data engineer"},
	"mobile":    {"android developer", "ios developer", "app developer"},
}

func GetSynonyms(query string) []string {
	if query == "" {
		return []string{}
	}
	if v, ok := Synonyms[query]; ok {
		out := make([]string, 0, len(v))
		out = append(out, v...)
		return out
	}
	return []string{}
}
