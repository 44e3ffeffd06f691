package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/novarame/weekplan/internal/model"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"
)

// responseSchema constrains the generator to the fixed schedule shape.
const responseSchema = `{
  "type": "OBJECT",
  "properties": {
    "optimized_weekly_schedule": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "day": {"type": "STRING"},
          "date": {"type": "STRING"},
          "tasks": {
            "type": "ARRAY",
            "items": {
              "type": "OBJECT",
              "properties": {
                "time_start": {"type": "STRING"},
                "time_end": {"type": "STRING"},
                "duration_minutes": {"type": "NUMBER"},
                "activity_type": {"type": "STRING", "enum": ["Study", "Work", "Fixed", "Break", "Personal", "Chore"]},
                "subject_or_task": {"type": "STRING"},
                "priority_level": {"type": "STRING", "enum": ["High", "Medium", "Low", "N/A"]},
                "notes": {"type": "STRING"},
                "is_ai_generated": {"type": "BOOLEAN"}
              },
              "required": ["time_start", "time_end", "duration_minutes", "activity_type", "subject_or_task", "priority_level", "notes", "is_ai_generated"]
            }
          }
        },
        "required": ["day", "date", "tasks"]
      }
    },
    "summary_review": {
      "type": "OBJECT",
      "properties": {
        "total_study_hours": {"type": "STRING"},
        "deadlines_met": {"type": "STRING"},
        "high_priority_focus": {"type": "STRING"},
        "life_balance_score": {"type": "STRING"}
      },
      "required": ["total_study_hours", "deadlines_met", "high_priority_focus", "life_balance_score"]
    }
  },
  "required": ["optimized_weekly_schedule", "summary_review"]
}`

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiClient calls the generateContent endpoint and decodes the JSON
// schedule from the first candidate.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type GeminiOption func(*GeminiClient)

func WithModel(m string) GeminiOption {
	return func(c *GeminiClient) { c.model = m }
}

func WithBaseURL(u string) GeminiOption {
	return func(c *GeminiClient) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(h *http.Client) GeminiOption {
	return func(c *GeminiClient) { c.httpClient = h }
}

func NewGeminiClient(apiKey string, opts ...GeminiOption) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("generate: api key is required")
	}
	c := &GeminiClient{
		apiKey:     apiKey,
		model:      DefaultModel,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *GeminiClient) Generate(ctx context.Context, in model.UserInputData, locked []model.Task) (model.Schedule, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: BuildPrompt(in, locked)}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   json.RawMessage(responseSchema),
		},
	})
	if err != nil {
		return model.Schedule{}, fmt.Errorf("generate: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return model.Schedule{}, fmt.Errorf("generate: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("generate: call generator: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return model.Schedule{}, fmt.Errorf("generate: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return model.Schedule{}, fmt.Errorf("generate: generator returned %s", resp.Status)
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return model.Schedule{}, fmt.Errorf("generate: decode response: %w", err)
	}
	text := firstText(decoded)
	if strings.TrimSpace(text) == "" {
		return model.Schedule{}, ErrNoContent
	}

	var schedule model.Schedule
	if err := json.Unmarshal([]byte(text), &schedule); err != nil {
		return model.Schedule{}, fmt.Errorf("%w: %v", ErrBadSchedule, err)
	}
	if err := validateGenerated(schedule); err != nil {
		return model.Schedule{}, err
	}
	return schedule, nil
}

func firstText(r generateResponse) string {
	if len(r.Candidates) == 0 {
		return ""
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}
