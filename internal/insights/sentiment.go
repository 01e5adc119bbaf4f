package insights

import (
	"strings"
	"unicode"

	"insightdeck/internal/model"
)

// labelThreshold separates positive/negative compounds from neutral.
const labelThreshold = 0.15

// ScoreSentiment scores a block of free text against the weighted
// lexicons. Texts with no lexicon match score neutral with zero
// confidence.
func ScoreSentiment(text string) model.SentimentScore {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return model.SentimentScore{Label: model.SentimentNeutral}
	}

	var positive, negative float64
	matched := 0

	for i, tok := range tokens {
		weight, sign := lexiconLookup(tok)
		if sign == 0 {
			continue
		}
		matched++

		// Inspect the single preceding token. A negation word flips the
		// sign; the intensifier check then moves one token further back.
		// No chaining beyond that.
		prev := i - 1
		if prev >= 0 && negationWords[tokens[prev]] {
			sign = -sign
			prev--
		}
		if prev >= 0 {
			if mult, ok := intensifiers[tokens[prev]]; ok {
				weight *= mult
			}
		}

		if sign > 0 {
			positive += weight
		} else {
			negative += weight
		}
	}

	if matched == 0 {
		return model.SentimentScore{Label: model.SentimentNeutral}
	}

	compound := (positive - negative) / (positive + negative)
	confidence := float64(matched) / 3.0
	if confidence > 1 {
		confidence = 1
	}

	label := model.SentimentNeutral
	if compound > labelThreshold {
		label = model.SentimentPositive
	} else if compound < -labelThreshold {
		label = model.SentimentNegative
	}

	return model.SentimentScore{Label: label, Compound: compound, Confidence: confidence}
}

// SummarizeSentiment scores every non-empty free-text answer in the
// dataset and aggregates the results.
func SummarizeSentiment(dataset *model.SurveyDataset) model.SentimentSummary {
	freeText := make(map[string]bool)
	for _, q := range dataset.Questions {
		if q.Kind == model.QuestionKindFreeText {
			freeText[q.ID] = true
		}
	}

	summary := model.SentimentSummary{Overall: model.SentimentNeutral}
	var compoundSum float64
	withMatches := 0

	for _, resp := range dataset.Responses {
		for qid, answer := range resp.Answers {
			if !freeText[qid] || strings.TrimSpace(answer) == "" {
				continue
			}
			score := ScoreSentiment(answer)
			summary.ScoredTexts++
			switch score.Label {
			case model.SentimentPositive:
				summary.PositiveCount++
			case model.SentimentNegative:
				summary.NegativeCount++
			default:
				summary.NeutralCount++
			}
			if score.Confidence > 0 {
				compoundSum += score.Compound
				withMatches++
			}
		}
	}

	if withMatches > 0 {
		summary.AverageCompound = compoundSum / float64(withMatches)
	}
	if summary.AverageCompound > labelThreshold {
		summary.Overall = model.SentimentPositive
	} else if summary.AverageCompound < -labelThreshold {
		summary.Overall = model.SentimentNegative
	}

	return summary
}

// lexiconLookup returns the base weight and sentiment sign of a token,
// or (0, 0) when the token carries no sentiment.
func lexiconLookup(token string) (float64, int) {
	if w, ok := positiveLexicon[token]; ok {
		return w, 1
	}
	if w, ok := negativeLexicon[token]; ok {
		return w, -1
	}
	return 0, 0
}

// tokenize lower-cases, strips punctuation and splits on whitespace.
func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return unicode.ToLower(r)
	}, text)
	return strings.Fields(cleaned)
}
