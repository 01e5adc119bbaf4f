package insights

import (
	"sort"
	"strings"

	"insightdeck/internal/model"
)

// Length buckets and quality grading constants.
const (
	shortLengthMax  = 50
	mediumLengthMax = 200

	qualityHighMin   = 80.0
	qualityMediumMin = 50.0

	highWeight   = 90.0
	mediumWeight = 65.0
	lowWeight    = 25.0

	topTermsLimit = 10
	minTermLength = 3
)

// stopTerms are filler words excluded from the top-terms tally.
var stopTerms = map[string]bool{
	"the": true, "and": true, "but": true, "for": true, "with": true,
	"was": true, "were": true, "are": true, "its": true, "this": true,
	"that": true, "these": true, "those": true, "have": true, "has": true,
	"had": true, "not": true, "very": true, "really": true, "too": true,
	"from": true, "about": true, "would": true, "could": true, "should": true,
	"will": true, "just": true, "there": true, "here": true, "when": true,
	"what": true, "which": true, "how": true, "all": true, "any": true,
	"some": true, "more": true, "most": true, "much": true, "out": true,
	"you": true, "your": true, "they": true, "their": true, "them": true,
	"our": true, "also": true, "than": true, "into": true, "over": true,
}

// AnalyzePatterns computes the aggregate answer statistics: per-question
// frequency and skip rate, free-text length distribution, temporal
// distribution and per-response quality scores.
func AnalyzePatterns(dataset *model.SurveyDataset) model.PatternReport {
	return model.PatternReport{
		Frequencies: answerFrequencies(dataset),
		SkipRates:   skipRates(dataset),
		Lengths:     lengthDistribution(dataset),
		Temporal:    temporalDistribution(dataset),
		TopTerms:    topTerms(dataset),
		Quality:     qualityScores(dataset),
	}
}

// topTerms tallies the words respondents actually use in free-text
// answers, minus filler words and short tokens.
func topTerms(dataset *model.SurveyDataset) []model.TermCount {
	freeText := make(map[string]bool)
	for _, q := range dataset.Questions {
		if q.Kind == model.QuestionKindFreeText {
			freeText[q.ID] = true
		}
	}

	counts := make(map[string]int)
	for i := range dataset.Responses {
		for qid, answer := range dataset.Responses[i].Answers {
			if !freeText[qid] {
				continue
			}
			for _, tok := range tokenize(answer) {
				if len(tok) < minTermLength || stopTerms[tok] {
					continue
				}
				counts[tok]++
			}
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > topTermsLimit {
		terms = terms[:topTermsLimit]
	}

	result := make([]model.TermCount, 0, len(terms))
	for _, term := range terms {
		result = append(result, model.TermCount{Term: term, Count: counts[term]})
	}
	return result
}

func answerFrequencies(dataset *model.SurveyDataset) []model.QuestionFrequency {
	freqs := []model.QuestionFrequency{}
	for _, q := range dataset.Questions {
		// Stray values on choice questions are dropped from the tally
		// without comment.
		allowed := map[string]bool{}
		if q.Kind == model.QuestionKindChoice {
			for _, opt := range q.Options {
				allowed[opt] = true
			}
		}

		counts := make(map[string]int)
		total := 0
		for i := range dataset.Responses {
			answer := dataset.Responses[i].Answers[q.ID]
			if answer == "" {
				continue
			}
			if q.Kind == model.QuestionKindChoice && !allowed[answer] {
				continue
			}
			counts[answer]++
			total++
		}
		if total == 0 {
			continue
		}

		values := make([]string, 0, len(counts))
		for v := range counts {
			values = append(values, v)
		}
		// Stable tie-break so reruns return identical reports.
		sort.Slice(values, func(i, j int) bool {
			if counts[values[i]] != counts[values[j]] {
				return counts[values[i]] > counts[values[j]]
			}
			return values[i] < values[j]
		})

		most := values[0]
		least := values[len(values)-1]
		freqs = append(freqs, model.QuestionFrequency{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			MostCommon: model.AnswerCount{
				Value: most,
				Count: counts[most],
				Share: float64(counts[most]) / float64(total),
			},
			LeastCommon: model.AnswerCount{
				Value: least,
				Count: counts[least],
				Share: float64(counts[least]) / float64(total),
			},
			TotalAnswers: total,
		})
	}
	return freqs
}

func skipRates(dataset *model.SurveyDataset) []model.QuestionSkipRate {
	rates := []model.QuestionSkipRate{}
	total := len(dataset.Responses)
	for _, q := range dataset.Questions {
		answered := 0
		for i := range dataset.Responses {
			if dataset.Responses[i].Answers[q.ID] != "" {
				answered++
			}
		}
		rate := 0.0
		if total > 0 {
			rate = float64(total-answered) / float64(total) * 100
		}
		rates = append(rates, model.QuestionSkipRate{
			QuestionID:    q.ID,
			QuestionText:  q.Text,
			AnsweredCount: answered,
			SkipRate:      rate,
		})
	}
	return rates
}

func lengthDistribution(dataset *model.SurveyDataset) model.LengthDistribution {
	freeText := make(map[string]bool)
	for _, q := range dataset.Questions {
		if q.Kind == model.QuestionKindFreeText {
			freeText[q.ID] = true
		}
	}

	dist := model.LengthDistribution{}
	sum := 0
	count := 0
	for i := range dataset.Responses {
		for qid, answer := range dataset.Responses[i].Answers {
			if !freeText[qid] || answer == "" {
				continue
			}
			n := len(answer)
			switch {
			case n < shortLengthMax:
				dist.Short++
			case n <= mediumLengthMax:
				dist.Medium++
			default:
				dist.Long++
			}
			if count == 0 || n < dist.Min {
				dist.Min = n
			}
			if n > dist.Max {
				dist.Max = n
			}
			sum += n
			count++
		}
	}
	if count > 0 {
		dist.Avg = float64(sum) / float64(count)
	}
	return dist
}

func temporalDistribution(dataset *model.SurveyDataset) model.TemporalDistribution {
	dist := model.TemporalDistribution{
		ByHour:    make(map[int]int),
		ByWeekday: make(map[string]int),
		PeakHours: []int{},
	}
	for i := range dataset.Responses {
		at := dataset.Responses[i].SubmittedAt
		if at.IsZero() {
			continue
		}
		dist.ByHour[at.Hour()]++
		dist.ByWeekday[at.Weekday().String()]++
	}

	hours := make([]int, 0, len(dist.ByHour))
	for h := range dist.ByHour {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if dist.ByHour[hours[i]] != dist.ByHour[hours[j]] {
			return dist.ByHour[hours[i]] > dist.ByHour[hours[j]]
		}
		return hours[i] < hours[j]
	})
	if len(hours) > 3 {
		hours = hours[:3]
	}
	dist.PeakHours = hours
	return dist
}

// qualityScores awards up to 3 points per question: 1 for answering at
// all, then for free text +1 when longer than 10 chars and +1 more past
// 50; choice answers get a flat +2 on top of the base point.
func qualityScores(dataset *model.SurveyDataset) model.QualitySummary {
	summary := model.QualitySummary{PerResponse: []model.ResponseQuality{}}
	maxPoints := 3 * len(dataset.Questions)
	if maxPoints == 0 {
		return summary
	}

	for i := range dataset.Responses {
		resp := &dataset.Responses[i]
		points := 0
		for _, q := range dataset.Questions {
			answer := resp.Answers[q.ID]
			if answer == "" {
				continue
			}
			points++
			if q.Kind == model.QuestionKindFreeText {
				n := len(strings.TrimSpace(answer))
				if n > 10 {
					points++
				}
				if n > 50 {
					points++
				}
			} else {
				points += 2
			}
		}

		score := float64(points) / float64(maxPoints) * 100
		class := model.QualityLow
		switch {
		case score >= qualityHighMin:
			class = model.QualityHigh
			summary.HighCount++
		case score >= qualityMediumMin:
			class = model.QualityMedium
			summary.MediumCount++
		default:
			summary.LowCount++
		}
		summary.PerResponse = append(summary.PerResponse, model.ResponseQuality{
			ResponseID: resp.ID,
			Score:      score,
			Class:      class,
		})
	}

	classified := summary.HighCount + summary.MediumCount + summary.LowCount
	if classified > 0 {
		summary.OverallScore = (float64(summary.HighCount)*highWeight +
			float64(summary.MediumCount)*mediumWeight +
			float64(summary.LowCount)*lowWeight) / float64(classified)
	}
	return summary
}
