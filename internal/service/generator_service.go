package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"insightdeck/internal/config"
	"insightdeck/internal/model"
)

// GeneratorService produces draft questions for a topic via the Gemini
// API. When no key is configured, or the call keeps failing, it returns
// the built-in fallback list so survey authoring never blocks on the
// external service.
type GeneratorService struct {
	config *config.GeneratorConfig
	client *http.Client
}

// NewGeneratorService creates a new generator service
func NewGeneratorService() *GeneratorService {
	cfg := config.DefaultGeneratorConfig()
	return &GeneratorService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// GenerateQuestions returns draft questions for a survey topic
func (s *GeneratorService) GenerateQuestions(ctx context.Context, topic string) ([]model.Question, error) {
	if !s.config.IsEnabled() {
		return fallbackQuestions(topic), nil
	}

	prompt := buildQuestionPrompt(topic)

	var raw string
	operation := func() error {
		out, err := s.callModel(ctx, prompt)
		if err != nil {
			return err
		}
		raw = out
		return nil
	}
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 15 * time.Second
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return fallbackQuestions(topic), nil
	}

	var generated []struct {
		Text    string   `json:"text"`
		Kind    string   `json:"kind"`
		Options []string `json:"options,omitempty"`
	}
	if err := json.Unmarshal([]byte(raw), &generated); err != nil || len(generated) == 0 {
		return fallbackQuestions(topic), nil
	}

	questions := make([]model.Question, 0, len(generated))
	for _, g := range generated {
		kind := model.QuestionKindFreeText
		if g.Kind == string(model.QuestionKindChoice) && len(g.Options) >= 2 {
			kind = model.QuestionKindChoice
		}
		questions = append(questions, model.Question{
			ID:      uuid.New().String(),
			Text:    g.Text,
			Kind:    kind,
			Options: g.Options,
		})
	}
	return questions, nil
}

func buildQuestionPrompt(topic string) string {
	return fmt.Sprintf(`Generate 5 survey questions about: %s
Return a JSON array of objects with fields "text", "kind" (CHOICE or FREE_TEXT)
and, for CHOICE questions, "options" (3-5 strings). Mix both kinds.`, topic)
}

// callModel makes one request to the Gemini API
func (s *GeneratorService) callModel(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.Endpoint(), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generator API returned %d", resp.StatusCode)
	}

	var modelResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &modelResp); err != nil {
		return "", err
	}
	if len(modelResp.Candidates) == 0 || len(modelResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generator API returned no candidates")
	}

	return modelResp.Candidates[0].Content.Parts[0].Text, nil
}

// fallbackQuestions is the deterministic list used when the external
// service is unavailable.
func fallbackQuestions(topic string) []model.Question {
	return []model.Question{
		{
			ID:   uuid.New().String(),
			Text: fmt.Sprintf("How satisfied are you with %s overall?", topic),
			Kind: model.QuestionKindChoice,
			Options: []string{
				"Very satisfied", "Satisfied", "Neutral", "Dissatisfied", "Very dissatisfied",
			},
		},
		{
			ID:   uuid.New().String(),
			Text: fmt.Sprintf("How often do you engage with %s?", topic),
			Kind: model.QuestionKindChoice,
			Options: []string{
				"Daily", "Weekly", "Monthly", "Rarely", "Never",
			},
		},
		{
			ID:   uuid.New().String(),
			Text: fmt.Sprintf("What do you like most about %s?", topic),
			Kind: model.QuestionKindFreeText,
		},
		{
			ID:   uuid.New().String(),
			Text: fmt.Sprintf("What would you improve about %s?", topic),
			Kind: model.QuestionKindFreeText,
		},
		{
			ID:   uuid.New().String(),
			Text: "Would you recommend this to a colleague?",
			Kind: model.QuestionKindChoice,
			Options: []string{
				"Yes", "Maybe", "No",
			},
		},
	}
}
