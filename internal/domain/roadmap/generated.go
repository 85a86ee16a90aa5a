package roadmap

// Generated mirrors the model output schema: phase and capstone topics arrive
// as bare name strings and resource types may be absent.
type Generated struct {
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Role              string            `json:"role"`
	Salary            string            `json:"salary"`
	CurrentSkills     []string          `json:"currentSkills"`
	Growth            string            `json:"growth"`
	PersonalisedSteps []GeneratedPhase  `json:"personalisedSteps"`
	CapstoneProject   GeneratedCapstone `json:"capstoneProject"`
}

type GeneratedPhase struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	EstimatedTime  string     `json:"estimatedTime"`
	Difficulty     string     `json:"difficulty"`
	RequiredSkills []string   `json:"requiredSkills"`
	TopicNames     []string   `json:"topicNames"`
	Resources      []Resource `json:"resources"`
}

type GeneratedCapstone struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	EstimatedTime string     `json:"estimatedTime"`
	SkillsUsed    []string   `json:"skillsUsed"`
	TopicNames    []string   `json:"topicNames"`
	Resources     []Resource `json:"resources"`
}

const defaultResourceType = "documentation"

// Normalize rewrites a raw generation into the persisted document shape:
// topic names become {id, name} objects with 1-based ids and resources
// missing a type default to "documentation".
func Normalize(g Generated) PersonalRoadmap {
	out := PersonalRoadmap{
		Title:         g.Title,
		Description:   g.Description,
		Role:          g.Role,
		Salary:        g.Salary,
		CurrentSkills: g.CurrentSkills,
		Growth:        g.Growth,
	}

	out.PersonalisedSteps = make([]PersonalPhase, 0, len(g.PersonalisedSteps))
	for _, p := range g.PersonalisedSteps {
		out.PersonalisedSteps = append(out.PersonalisedSteps, PersonalPhase{
			Title:          p.Title,
			Description:    p.Description,
			EstimatedTime:  p.EstimatedTime,
			Difficulty:     p.Difficulty,
			RequiredSkills: p.RequiredSkills,
			TopicNames:     indexTopics(p.TopicNames),
			Resources:      defaultResourceTypes(p.Resources),
		})
	}

	out.CapstoneProject = CapstoneProject{
		Title:         g.CapstoneProject.Title,
		Description:   g.CapstoneProject.Description,
		EstimatedTime: g.CapstoneProject.EstimatedTime,
		SkillsUsed:    g.CapstoneProject.SkillsUsed,
		TopicNames:    indexTopics(g.CapstoneProject.TopicNames),
		Resources:     defaultResourceTypes(g.CapstoneProject.Resources),
	}

	return out
}

func indexTopics(names []string) []Topic {
	topics := make([]Topic, 0, len(names))
	for i, name := range names {
		topics = append(topics, Topic{ID: i + 1, Name: name})
	}
	return topics
}

func defaultResourceTypes(in []Resource) []Resource {
	out := make([]Resource, 0, len(in))
	for _, r := range in {
		if r.Type == "" {
			r.Type = defaultResourceType
		}
		out = append(out, r)
	}
	return out
}
