package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"insightdeck/internal/model"
)

func TestScoreSentiment(t *testing.T) {
	t.Run("Empty text is neutral with zero confidence", func(t *testing.T) {
		score := ScoreSentiment("")
		assert.Equal(t, model.SentimentNeutral, score.Label)
		assert.Equal(t, 0.0, score.Compound)
		assert.Equal(t, 0.0, score.Confidence)
	})

	t.Run("Text with no lexicon match is neutral with zero confidence", func(t *testing.T) {
		score := ScoreSentiment("The quarterly report was filed on Tuesday.")
		assert.Equal(t, model.SentimentNeutral, score.Label)
		assert.Equal(t, 0.0, score.Compound)
		assert.Equal(t, 0.0, score.Confidence)
	})

	t.Run("Strong positive saturates confidence at three matches", func(t *testing.T) {
		score := ScoreSentiment("This is absolutely wonderful and amazing")
		assert.Equal(t, model.SentimentPositive, score.Label)
		assert.Equal(t, 1.0, score.Compound)
		assert.Equal(t, 1.0, score.Confidence)
	})

	t.Run("Negation flips a positive word negative", func(t *testing.T) {
		score := ScoreSentiment("not good")
		assert.Equal(t, model.SentimentNegative, score.Label)
		assert.Equal(t, -1.0, score.Compound)
	})

	t.Run("Negation flips a negative word positive", func(t *testing.T) {
		score := ScoreSentiment("not bad at all")
		assert.Equal(t, model.SentimentPositive, score.Label)
		assert.Equal(t, 1.0, score.Compound)
	})

	t.Run("Intensifier before negation still applies after the flip", func(t *testing.T) {
		// "very not good" reads awkwardly but exercises the lookback:
		// negation at i-1 flips the sign, the intensifier at i-2 scales it.
		flipped := ScoreSentiment("very not good")
		assert.Equal(t, model.SentimentNegative, flipped.Label)
		assert.Equal(t, -1.0, flipped.Compound)
	})

	t.Run("Intensifier scales the adjacent sentiment word", func(t *testing.T) {
		plain := ScoreSentiment("good but slow and confusing")
		boosted := ScoreSentiment("extremely good but slow and confusing")
		assert.Greater(t, boosted.Compound, plain.Compound)
	})

	t.Run("Balanced text lands in the neutral band", func(t *testing.T) {
		// good (1.0) vs slow (0.9): compound 0.1/1.9, inside ±0.15.
		score := ScoreSentiment("good but slow")
		assert.Equal(t, model.SentimentNeutral, score.Label)
		assert.InDelta(t, 0.0526, score.Compound, 0.001)
		assert.InDelta(t, 2.0/3.0, score.Confidence, 1e-9)
	})

	t.Run("Punctuation and case do not affect matching", func(t *testing.T) {
		a := ScoreSentiment("GREAT!!! Really, really great.")
		b := ScoreSentiment("great really really great")
		assert.Equal(t, a.Compound, b.Compound)
		assert.Equal(t, a.Confidence, b.Confidence)
	})
}

func TestSummarizeSentiment(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Text: "Choose one", Kind: model.QuestionKindChoice, Options: []string{"Great", "Terrible"}},
		{ID: "q2", Text: "Tell us more", Kind: model.QuestionKindFreeText},
	}

	t.Run("Only free-text answers are scored", func(t *testing.T) {
		dataset := &model.SurveyDataset{
			SurveyID:  "s1",
			Questions: questions,
			Responses: []model.Response{
				{ID: "r1", Answers: map[string]string{"q1": "Great", "q2": "Everything was excellent and smooth."}},
				{ID: "r2", Answers: map[string]string{"q1": "Terrible"}},
			},
		}

		summary := SummarizeSentiment(dataset)
		assert.Equal(t, 1, summary.ScoredTexts)
		assert.Equal(t, 1, summary.PositiveCount)
		assert.Equal(t, 0, summary.NegativeCount)
		assert.Equal(t, model.SentimentPositive, summary.Overall)
	})

	t.Run("No-match texts count as neutral but do not dilute the average", func(t *testing.T) {
		dataset := &model.SurveyDataset{
			SurveyID:  "s1",
			Questions: questions,
			Responses: []model.Response{
				{ID: "r1", Answers: map[string]string{"q2": "Submitted on a Tuesday."}},
				{ID: "r2", Answers: map[string]string{"q2": "Absolutely wonderful, amazing product."}},
			},
		}

		summary := SummarizeSentiment(dataset)
		assert.Equal(t, 2, summary.ScoredTexts)
		assert.Equal(t, 1, summary.NeutralCount)
		assert.Equal(t, 1, summary.PositiveCount)
		assert.Equal(t, 1.0, summary.AverageCompound)
	})

	t.Run("Empty dataset yields a neutral summary", func(t *testing.T) {
		summary := SummarizeSentiment(&model.SurveyDataset{SurveyID: "s1", Questions: questions})
		assert.Equal(t, model.SentimentNeutral, summary.Overall)
		assert.Equal(t, 0, summary.ScoredTexts)
		assert.Equal(t, 0.0, summary.AverageCompound)
	})
}
