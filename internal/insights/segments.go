package insights

import (
	"math"

	"insightdeck/internal/model"
)

// Segmentation thresholds. Time bounds are relative to the dataset mean
// completion time, the rest are absolute feature thresholds.
const (
	shallowRatioMax    = 0.4
	fastTimeFactor     = 0.7
	thoughtfulRatioMin = 0.6
	slowTimeFactor     = 1.5
	privateRatioMin    = 0.5
	engagedTextMin     = 0.5
	uniformVarietyMax  = 0.3
	completeRatioMin   = 0.99
)

// segmentRule is one named behavioral rule over the feature vector.
// Rules are evaluated independently in order; a respondent may match
// several, or none.
type segmentRule struct {
	name   string
	traits []string
	match  func(fv model.FeatureVector, meanTime float64) bool
}

var segmentRules = []segmentRule{
	{
		name:   "Fast & Shallow",
		traits: []string{"Completes well below average time", "Answers fewer than half the questions"},
		match: func(fv model.FeatureVector, meanTime float64) bool {
			return fv.CompletionRatio < shallowRatioMax &&
				fv.CompletionSeconds > 0 && fv.CompletionSeconds < fastTimeFactor*meanTime
		},
	},
	{
		name:   "Thoughtful Contributors",
		traits: []string{"Takes well above average time", "Answers most questions"},
		match: func(fv model.FeatureVector, meanTime float64) bool {
			return fv.CompletionRatio > thoughtfulRatioMin &&
				fv.CompletionSeconds > slowTimeFactor*meanTime
		},
	},
	{
		name:   "Privacy-Conscious",
		traits: []string{"Submits anonymously", "Still completes over half the survey"},
		match: func(fv model.FeatureVector, _ float64) bool {
			return fv.IsAnonymous && fv.CompletionRatio > privateRatioMin
		},
	},
	{
		name:   "Text-Engaged",
		traits: []string{"Writes long free-text answers"},
		match: func(fv model.FeatureVector, _ float64) bool {
			return fv.TextEngagement > engagedTextMin
		},
	},
	{
		name:   "Straight-Liners",
		traits: []string{"Repeats the same answer across questions"},
		match: func(fv model.FeatureVector, _ float64) bool {
			return fv.AnswerVarietyRatio > 0 && fv.AnswerVarietyRatio < uniformVarietyMax
		},
	},
	{
		name:   "Completionists",
		traits: []string{"Answers every question"},
		match: func(fv model.FeatureVector, _ float64) bool {
			return fv.CompletionRatio >= completeRatioMin
		},
	},
}

// SegmentRespondents partitions respondents into overlap-tolerant named
// segments. Segments with no qualifying respondents are omitted.
func SegmentRespondents(dataset *model.SurveyDataset) []model.Segment {
	if len(dataset.Responses) == 0 {
		return []model.Segment{}
	}

	features := make([]model.FeatureVector, len(dataset.Responses))
	for i := range dataset.Responses {
		features[i] = ExtractFeatures(&dataset.Responses[i], dataset.Questions)
	}

	meanTime, _ := completionTimeStats(dataset.Responses)

	total := len(dataset.Responses)
	segments := []model.Segment{}
	for _, rule := range segmentRules {
		var members []string
		for i := range dataset.Responses {
			if rule.match(features[i], meanTime) {
				members = append(members, dataset.Responses[i].ID)
			}
		}
		if len(members) == 0 {
			continue
		}
		segments = append(segments, model.Segment{
			Name:        rule.name,
			Size:        len(members),
			Percentage:  float64(len(members)) / float64(total) * 100,
			ResponseIDs: members,
			Traits:      rule.traits,
		})
	}

	return segments
}

// completionTimeStats returns the mean and standard deviation of
// completion time over responses with a known (non-zero) value.
func completionTimeStats(responses []model.Response) (mean, stddev float64) {
	var sum float64
	n := 0
	for i := range responses {
		if responses[i].CompletionSeconds > 0 {
			sum += responses[i].CompletionSeconds
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	mean = sum / float64(n)

	var sq float64
	for i := range responses {
		if responses[i].CompletionSeconds > 0 {
			d := responses[i].CompletionSeconds - mean
			sq += d * d
		}
	}
	stddev = math.Sqrt(sq / float64(n))
	return mean, stddev
}
