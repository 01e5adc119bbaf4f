package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"insightdeck/internal/model"
)

// ReportWorkbook renders an insights report as an xlsx workbook for
// download. Layout: one sheet per report section.
func ReportWorkbook(report *model.InsightsReport) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSummarySheet(f, report); err != nil {
		return nil, err
	}
	if err := writePatternSheet(f, report); err != nil {
		return nil, err
	}
	if err := writeSegmentSheet(f, report); err != nil {
		return nil, err
	}
	if err := writeAnomalySheet(f, report); err != nil {
		return nil, err
	}

	// Drop the default sheet excelize creates.
	idx, err := f.GetSheetIndex("Summary")
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	return f, nil
}

func writeSummarySheet(f *excelize.File, report *model.InsightsReport) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Survey", report.SurveyID},
		{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Responses", report.ResponseCount},
		{"Quality score", fmt.Sprintf("%.1f", report.QualityScore)},
		{},
		{"Sentiment", string(report.Sentiment.Overall)},
		{"Average compound", fmt.Sprintf("%.3f", report.Sentiment.AverageCompound)},
		{"Positive texts", report.Sentiment.PositiveCount},
		{"Neutral texts", report.Sentiment.NeutralCount},
		{"Negative texts", report.Sentiment.NegativeCount},
		{},
		{"Response trend", string(report.Trends.Direction)},
		{"Projected next week", fmt.Sprintf("%.0f", report.Trends.ProjectedWeek)},
	}
	return writeRows(f, sheet, rows)
}

func writePatternSheet(f *excelize.File, report *model.InsightsReport) error {
	const sheet = "Questions"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Question", "Answered", "Skip rate %", "Most common", "Least common"},
	}
	mostByID := make(map[string]model.QuestionFrequency)
	for _, freq := range report.Patterns.Frequencies {
		mostByID[freq.QuestionID] = freq
	}
	for _, sr := range report.Patterns.SkipRates {
		most, least := "", ""
		if freq, ok := mostByID[sr.QuestionID]; ok {
			most = fmt.Sprintf("%s (%d)", freq.MostCommon.Value, freq.MostCommon.Count)
			least = fmt.Sprintf("%s (%d)", freq.LeastCommon.Value, freq.LeastCommon.Count)
		}
		rows = append(rows, []interface{}{
			sr.QuestionText, sr.AnsweredCount, fmt.Sprintf("%.1f", sr.SkipRate), most, least,
		})
	}
	return writeRows(f, sheet, rows)
}

func writeSegmentSheet(f *excelize.File, report *model.InsightsReport) error {
	const sheet = "Segments"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Segment", "Size", "Percent", "Traits"},
	}
	for _, seg := range report.Segments {
		rows = append(rows, []interface{}{
			seg.Name, seg.Size, fmt.Sprintf("%.1f", seg.Percentage), strings.Join(seg.Traits, "; "),
		})
	}
	return writeRows(f, sheet, rows)
}

func writeAnomalySheet(f *excelize.File, report *model.InsightsReport) error {
	const sheet = "Anomalies"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Kind", "Severity", "Affected", "Confidence", "Description", "Suggested action"},
	}
	for _, a := range report.Anomalies {
		rows = append(rows, []interface{}{
			string(a.Kind), string(a.Severity), len(a.AffectedResponseIDs),
			a.Confidence, a.Description, a.SuggestedAction,
		})
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
