package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"insightdeck/internal/model"
)

func TestEngineBuildReport(t *testing.T) {
	engine := NewEngine()

	t.Run("Zero responses produce a complete empty report", func(t *testing.T) {
		dataset := &model.SurveyDataset{
			SurveyID:  "s1",
			Questions: []model.Question{{ID: "q1", Kind: model.QuestionKindFreeText}},
		}

		report := engine.BuildReport(dataset)
		assert.Equal(t, "s1", report.SurveyID)
		assert.Equal(t, 0, report.ResponseCount)
		assert.Empty(t, report.Segments)
		assert.Empty(t, report.Anomalies)
		assert.Empty(t, report.Trends.Daily)
		assert.Equal(t, model.SentimentNeutral, report.Sentiment.Overall)
		assert.Equal(t, 0.0, report.QualityScore)
		assert.False(t, report.GeneratedAt.IsZero())
	})

	t.Run("All components are populated from one dataset", func(t *testing.T) {
		dataset := &model.SurveyDataset{
			SurveyID: "s1",
			Questions: []model.Question{
				{ID: "q1", Kind: model.QuestionKindChoice, Options: []string{"A", "B"}},
				{ID: "q2", Kind: model.QuestionKindFreeText},
			},
			Responses: []model.Response{
				{
					ID:                "r1",
					RespondentName:    "Dana",
					CompletionSeconds: 120,
					SubmittedAt:       time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
					Answers:           map[string]string{"q1": "A", "q2": "The whole flow was excellent and easy to follow."},
				},
				{
					ID:                "r2",
					CompletionSeconds: 90,
					SubmittedAt:       time.Date(2026, 8, 21, 15, 0, 0, 0, time.UTC),
					Answers:           map[string]string{"q1": "B", "q2": "Confusing and slow in places."},
				},
			},
		}

		report := engine.BuildReport(dataset)
		assert.Equal(t, 2, report.ResponseCount)
		assert.Equal(t, 2, report.Sentiment.ScoredTexts)
		assert.NotEmpty(t, report.Segments)
		assert.Len(t, report.Patterns.SkipRates, 2)
		assert.Len(t, report.Trends.Daily, 2)
		assert.Equal(t, report.Patterns.Quality.OverallScore, report.QualityScore)
	})

	t.Run("Input dataset is not mutated", func(t *testing.T) {
		dataset := &model.SurveyDataset{
			SurveyID:  "s1",
			Questions: []model.Question{{ID: "q1", Kind: model.QuestionKindFreeText}},
			Responses: []model.Response{
				{ID: "r1", CompletionSeconds: 60, Answers: map[string]string{"q1": "fine"}},
			},
		}
		before := DatasetHash(dataset)
		engine.BuildReport(dataset)
		assert.Equal(t, before, DatasetHash(dataset))
	})
}

func TestDatasetHash(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Text: "Pick", Kind: model.QuestionKindChoice, Options: []string{"A", "B"}},
	}
	r1 := model.Response{ID: "r1", SubmittedAt: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC), CompletionSeconds: 30, Answers: map[string]string{"q1": "A"}}
	r2 := model.Response{ID: "r2", SubmittedAt: time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC), CompletionSeconds: 45, Answers: map[string]string{"q1": "B"}}

	t.Run("Stable under response ordering", func(t *testing.T) {
		a := DatasetHash(&model.SurveyDataset{SurveyID: "s1", Questions: questions, Responses: []model.Response{r1, r2}})
		b := DatasetHash(&model.SurveyDataset{SurveyID: "s1", Questions: questions, Responses: []model.Response{r2, r1}})
		assert.Equal(t, a, b)
	})

	t.Run("Changes when a response is added", func(t *testing.T) {
		a := DatasetHash(&model.SurveyDataset{SurveyID: "s1", Questions: questions, Responses: []model.Response{r1}})
		b := DatasetHash(&model.SurveyDataset{SurveyID: "s1", Questions: questions, Responses: []model.Response{r1, r2}})
		assert.NotEqual(t, a, b)
	})

	t.Run("Changes when completion time changes", func(t *testing.T) {
		fast := r1
		fast.CompletionSeconds = 5
		a := DatasetHash(&model.SurveyDataset{SurveyID: "s1", Questions: questions, Responses: []model.Response{r1}})
		b := DatasetHash(&model.SurveyDataset{SurveyID: "s1", Questions: questions, Responses: []model.Response{fast}})
		assert.NotEqual(t, a, b)
	})

	t.Run("Changes when a question changes", func(t *testing.T) {
		edited := []model.Question{{ID: "q1", Text: "Pick carefully", Kind: model.QuestionKindChoice, Options: []string{"A", "B"}}}
		a := DatasetHash(&model.SurveyDataset{SurveyID: "s1", Questions: questions, Responses: []model.Response{r1}})
		b := DatasetHash(&model.SurveyDataset{SurveyID: "s1", Questions: edited, Responses: []model.Response{r1}})
		assert.NotEqual(t, a, b)
	})
}
