package insights

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"insightdeck/internal/model"
)

// Engine composes the analysis components into one InsightsReport. Every
// component is a pure function of the dataset, so the five run as
// independent tasks and join before the report is assembled.
type Engine struct{}

// NewEngine creates a new insights engine
func NewEngine() *Engine {
	return &Engine{}
}

// BuildReport computes the full derived analytics for one dataset. It
// never fails and never mutates the input.
func (e *Engine) BuildReport(dataset *model.SurveyDataset) *model.InsightsReport {
	report := &model.InsightsReport{
		SurveyID:      dataset.SurveyID,
		GeneratedAt:   time.Now().UTC(),
		ResponseCount: len(dataset.Responses),
	}

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		report.Sentiment = SummarizeSentiment(dataset)
	}()
	go func() {
		defer wg.Done()
		report.Segments = SegmentRespondents(dataset)
	}()
	go func() {
		defer wg.Done()
		report.Anomalies = DetectAnomalies(dataset)
	}()
	go func() {
		defer wg.Done()
		report.Patterns = AnalyzePatterns(dataset)
	}()
	go func() {
		defer wg.Done()
		report.Trends = AnalyzeTrends(dataset)
	}()
	wg.Wait()

	report.QualityScore = report.Patterns.Quality.OverallScore
	return report
}

// DatasetHash returns a content hash of the dataset, stable under
// response ordering. Used as the memoization key so a cached report can
// never be served for a dataset it was not computed from.
func DatasetHash(dataset *model.SurveyDataset) string {
	h := sha256.New()
	h.Write([]byte(dataset.SurveyID))

	for _, q := range dataset.Questions {
		h.Write([]byte(q.ID))
		h.Write([]byte(q.Text))
		h.Write([]byte(string(q.Kind)))
		h.Write([]byte(strings.Join(q.Options, ",")))
	}

	lines := make([]string, 0, len(dataset.Responses))
	for i := range dataset.Responses {
		r := &dataset.Responses[i]
		var b strings.Builder
		b.WriteString(r.ID)
		b.WriteByte('|')
		b.WriteString(r.RespondentName)
		b.WriteByte('|')
		b.WriteString(r.SubmittedAt.UTC().Format(time.RFC3339))
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(r.CompletionSeconds, 'g', -1, 64))
		b.WriteByte('|')
		b.WriteString(canonicalAnswers(r.Answers))
		lines = append(lines, b.String())
	}
	sort.Strings(lines)
	for _, line := range lines {
		h.Write([]byte(line))
		h.Write([]byte{'\n'})
	}

	return hex.EncodeToString(h.Sum(nil))
}
