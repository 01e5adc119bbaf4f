package insights

import (
	"strings"

	"insightdeck/internal/model"
)

// Respondent names treated as anonymous markers.
var anonymousNames = map[string]bool{
	"anonymous": true,
	"anon":      true,
	"n/a":       true,
	"unknown":   true,
}

// ExtractFeatures derives the per-response feature vector used by the
// segmentation rules. All inputs are defaulted defensively; there are no
// error conditions.
func ExtractFeatures(resp *model.Response, questions []model.Question) model.FeatureVector {
	fv := model.FeatureVector{
		CompletionSeconds: resp.CompletionSeconds,
		IsAnonymous:       isAnonymous(resp.RespondentName),
	}
	if fv.CompletionSeconds < 0 {
		fv.CompletionSeconds = 0
	}

	freeText := make(map[string]bool)
	known := make(map[string]bool)
	for _, q := range questions {
		known[q.ID] = true
		if q.Kind == model.QuestionKindFreeText {
			freeText[q.ID] = true
		}
	}

	distinct := make(map[string]bool)
	nonEmpty := 0
	answered := 0
	textLenSum := 0
	textCount := 0
	for qid, answer := range resp.Answers {
		if answer == "" {
			continue
		}
		nonEmpty++
		distinct[answer] = true
		if known[qid] {
			answered++
		}

		if freeText[qid] {
			if n := len(strings.TrimSpace(answer)); n > 10 {
				textLenSum += n
				textCount++
			}
		}
	}

	if nonEmpty > 0 {
		fv.AnswerVarietyRatio = float64(len(distinct)) / float64(nonEmpty)
	}
	if textCount > 0 {
		fv.TextEngagement = float64(textLenSum) / float64(textCount) / 100.0
	}

	qCount := len(questions)
	if qCount < 1 {
		qCount = 1
	}
	fv.CompletionRatio = float64(answered) / float64(qCount)

	return fv
}

func isAnonymous(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return true
	}
	return anonymousNames[strings.ToLower(trimmed)]
}
