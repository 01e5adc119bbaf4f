package insights

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"insightdeck/internal/model"
)

// Detector thresholds and fixed per-pass confidence constants.
const (
	timeDeviationSigmas  = 2.0
	timeHighShare        = 0.10
	qualityRatioMin      = 0.7
	qualityCriticalShare = 0.20
	duplicateGroupMin    = 3 // groups larger than this are suspicious

	timeConfidence    = 0.85
	qualityConfidence = 0.90
	patternConfidence = 0.75
)

// DetectAnomalies runs the three detector passes over the dataset. Each
// pass contributes at most one aggregated anomaly entry; a dataset with
// zero responses yields none.
func DetectAnomalies(dataset *model.SurveyDataset) []model.Anomaly {
	anomalies := []model.Anomaly{}
	if len(dataset.Responses) == 0 {
		return anomalies
	}

	if a := detectTimeOutliers(dataset); a != nil {
		anomalies = append(anomalies, *a)
	}
	if a := detectQualityOutliers(dataset); a != nil {
		anomalies = append(anomalies, *a)
	}
	if a := detectDuplicatePatterns(dataset); a != nil {
		anomalies = append(anomalies, *a)
	}

	return anomalies
}

func detectTimeOutliers(dataset *model.SurveyDataset) *model.Anomaly {
	mean, stddev := completionTimeStats(dataset.Responses)
	if stddev == 0 {
		return nil
	}

	var affected []string
	for i := range dataset.Responses {
		t := dataset.Responses[i].CompletionSeconds
		if t <= 0 {
			continue
		}
		// >= so clusters sitting exactly on the 2-sigma boundary are
		// still flagged.
		if math.Abs(t-mean) >= timeDeviationSigmas*stddev {
			affected = append(affected, dataset.Responses[i].ID)
		}
	}
	if len(affected) == 0 {
		return nil
	}

	severity := model.SeverityMedium
	if float64(len(affected)) > timeHighShare*float64(len(dataset.Responses)) {
		severity = model.SeverityHigh
	}

	return &model.Anomaly{
		Kind:                model.AnomalyTime,
		Description:         fmt.Sprintf("%d responses deviate more than 2 standard deviations from the mean completion time", len(affected)),
		Severity:            severity,
		AffectedResponseIDs: affected,
		Confidence:          timeConfidence,
		SuggestedAction:     "Review flagged responses for rushed or stalled submissions",
	}
}

func detectQualityOutliers(dataset *model.SurveyDataset) *model.Anomaly {
	qCount := len(dataset.Questions)
	if qCount < 1 {
		qCount = 1
	}

	var affected []string
	for i := range dataset.Responses {
		fv := ExtractFeatures(&dataset.Responses[i], dataset.Questions)
		if fv.CompletionRatio < qualityRatioMin {
			affected = append(affected, dataset.Responses[i].ID)
		}
	}
	if len(affected) == 0 {
		return nil
	}

	severity := model.SeverityMedium
	if float64(len(affected)) > qualityCriticalShare*float64(len(dataset.Responses)) {
		severity = model.SeverityCritical
	}

	return &model.Anomaly{
		Kind:                model.AnomalyQuality,
		Description:         fmt.Sprintf("%d responses answered fewer than 70%% of questions", len(affected)),
		Severity:            severity,
		AffectedResponseIDs: affected,
		Confidence:          qualityConfidence,
		SuggestedAction:     "Consider shortening the survey or marking key questions as required",
	}
}

func detectDuplicatePatterns(dataset *model.SurveyDataset) *model.Anomaly {
	groups := make(map[string]int)
	for i := range dataset.Responses {
		groups[canonicalAnswers(dataset.Responses[i].Answers)]++
	}

	suspicious := 0
	for _, count := range groups {
		if count > duplicateGroupMin {
			suspicious++
		}
	}
	if suspicious == 0 {
		return nil
	}

	// Group membership is intentionally not attributed back to response
	// ids; the affected list stays empty.
	return &model.Anomaly{
		Kind:                model.AnomalyPattern,
		Description:         fmt.Sprintf("%d identical answer patterns repeated more than %d times", suspicious, duplicateGroupMin),
		Severity:            model.SeverityHigh,
		AffectedResponseIDs: []string{},
		Confidence:          patternConfidence,
		SuggestedAction:     "Investigate possible automated or coordinated submissions",
	}
}

// canonicalAnswers serializes an answer map into a stable string so
// identical answer sets collide regardless of map order.
func canonicalAnswers(answers map[string]string) string {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(answers[k])
		b.WriteByte('|')
	}
	return b.String()
}
