package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"skillmapper/internal/domain/roadmap"
)

// ErrBadOutput marks a model response that could not be parsed into the
// roadmap schema. Callers surface it as a server-side failure; generation is
// all-or-nothing per call and is never retried.
var ErrBadOutput = errors.New("model returned malformed roadmap")

// Client produces a structured roadmap draft from a user's current skills
// and target role.
type Client interface {
	GenerateRoadmap(ctx context.Context, skills []string, role string) (roadmap.Generated, error)
}

type geminiClient struct {
	logger *log.Logger

	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiClient(logger *log.Logger) (Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}

	baseURL := strings.TrimSpace(os.Getenv("GEMINI_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = "gemini-2.0-flash"
	}

	timeoutSec := 120
	if v := strings.TrimSpace(os.Getenv("GEMINI_TIMEOUT_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}

	return &geminiClient{
		logger:     logger,
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

const systemPrompt = `You are an expert career mentor generating structured and actionable learning roadmaps. The user is an Indian student aiming to learn new skills for a specific tech role. Your output must be relevant, practical, and locally suited for Indian learners.`

const userPromptTemplate = `Create a personalized learning roadmap for someone who has the following skills: %s, and wants to become a %s.

1. Break the roadmap into clear phases or weeks with learning goals.
2. For difficult or abstract topics, add YouTube video links.
3. Follow an 80:20 ratio: 80%% Indian content, 20%% global if needed.
4. Make sure all links are currently working YouTube URLs; avoid broken or placeholder links.
5. Include links to courses or documentation also if needed.`

type generateRequest struct {
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64        `json:"temperature"`
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func (c *geminiClient) GenerateRoadmap(ctx context.Context, skills []string, role string) (roadmap.Generated, error) {
	userPrompt := fmt.Sprintf(userPromptTemplate, strings.Join(skills, ", "), role)

	req := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemPrompt}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: userPrompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      0.5,
			ResponseMimeType: "application/json",
			ResponseSchema:   roadmapSchema(),
		},
	}

	raw, err := c.do(ctx, req)
	if err != nil {
		return roadmap.Generated{}, err
	}

	return DecodeRoadmap(raw)
}

func (c *geminiClient) do(ctx context.Context, body generateRequest) (string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.logger != nil {
			c.logger.Printf("[Gemini] request failed | status=%d body=%s", resp.StatusCode, truncate(string(raw), 512))
		}
		return "", fmt.Errorf("gemini http %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("gemini decode: %w", err)
	}

	var out strings.Builder
	for _, cand := range gr.Candidates {
		for _, p := range cand.Content.Parts {
			out.WriteString(p.Text)
		}
		break
	}
	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", fmt.Errorf("%w: empty candidate text", ErrBadOutput)
	}
	return text, nil
}

// DecodeRoadmap parses model output into the raw roadmap shape, tolerating
// incidental markdown code fences around the JSON body.
func DecodeRoadmap(text string) (roadmap.Generated, error) {
	text = stripCodeFence(text)

	var g roadmap.Generated
	if err := json.Unmarshal([]byte(text), &g); err != nil {
		return roadmap.Generated{}, fmt.Errorf("%w: %v", ErrBadOutput, err)
	}

	if len(g.PersonalisedSteps) == 0 {
		return roadmap.Generated{}, fmt.Errorf("%w: no phases", ErrBadOutput)
	}
	if g.Title == "" || g.Role == "" {
		return roadmap.Generated{}, fmt.Errorf("%w: missing title or role", ErrBadOutput)
	}
	if g.CapstoneProject.Title == "" {
		return roadmap.Generated{}, fmt.Errorf("%w: missing capstone project", ErrBadOutput)
	}

	return g, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func roadmapSchema() map[string]any {
	resourceSchema := map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"name": map[string]any{"type": "STRING"},
			"type": map[string]any{"type": "STRING"},
			"link": map[string]any{"type": "STRING"},
		},
		"required": []string{"name", "link"},
	}

	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"title":       map[string]any{"type": "STRING"},
			"description": map[string]any{"type": "STRING"},
			"role":        map[string]any{"type": "STRING"},
			"salary": map[string]any{
				"type":        "STRING",
				"description": "Only Range of salary in Indian Rupees",
			},
			"currentSkills": map[string]any{
				"type":  "ARRAY",
				"items": map[string]any{"type": "STRING"},
			},
			"growth": map[string]any{"type": "STRING"},
			"personalisedSteps": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"title":         map[string]any{"type": "STRING"},
						"description":   map[string]any{"type": "STRING"},
						"estimatedTime": map[string]any{"type": "STRING"},
						"difficulty":    map[string]any{"type": "STRING"},
						"requiredSkills": map[string]any{
							"type":  "ARRAY",
							"items": map[string]any{"type": "STRING"},
						},
						"topicNames": map[string]any{
							"type":  "ARRAY",
							"items": map[string]any{"type": "STRING"},
						},
						"resources": map[string]any{
							"type":  "ARRAY",
							"items": resourceSchema,
						},
					},
					"required": []string{"title", "estimatedTime", "difficulty", "requiredSkills", "topicNames", "resources"},
				},
			},
			"capstoneProject": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"title":         map[string]any{"type": "STRING"},
					"description":   map[string]any{"type": "STRING"},
					"estimatedTime": map[string]any{"type": "STRING"},
					"skillsUsed": map[string]any{
						"type":  "ARRAY",
						"items": map[string]any{"type": "STRING"},
					},
					"topicNames": map[string]any{
						"type":  "ARRAY",
						"items": map[string]any{"type": "STRING"},
					},
					"resources": map[string]any{
						"type":  "ARRAY",
						"items": resourceSchema,
					},
				},
				"required": []string{"title", "description", "estimatedTime", "skillsUsed", "topicNames", "resources"},
			},
		},
		"required": []string{"title", "description", "role", "salary", "currentSkills", "growth", "personalisedSteps", "capstoneProject"},
	}
}
