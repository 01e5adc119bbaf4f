package insights

import (
	"time"

	"insightdeck/internal/model"
)

// steadySlopeBand is the slope range (responses/day) still reported as steady.
const steadySlopeBand = 0.1

// AnalyzeTrends fits an ordinary least-squares line over the daily
// response counts and projects the coming week's volume. Deterministic:
// the same dataset always yields the same projection.
func AnalyzeTrends(dataset *model.SurveyDataset) model.TrendReport {
	report := model.TrendReport{Daily: []model.DailyCount{}, Direction: trendDirection(0)}

	var first, last time.Time
	byDay := make(map[string]int)
	for i := range dataset.Responses {
		at := dataset.Responses[i].SubmittedAt
		if at.IsZero() {
			continue
		}
		day := at.UTC().Truncate(24 * time.Hour)
		byDay[day.Format("2006-01-02")]++
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if last.IsZero() || day.After(last) {
			last = day
		}
	}
	if len(byDay) == 0 {
		return report
	}

	// Contiguous series from first to last day; gaps count as zero.
	var counts []int
	for day := first; !day.After(last); day = day.Add(24 * time.Hour) {
		key := day.Format("2006-01-02")
		report.Daily = append(report.Daily, model.DailyCount{Date: key, Count: byDay[key]})
		counts = append(counts, byDay[key])
	}

	slope, intercept := leastSquares(counts)
	report.Slope = slope
	report.Direction = trendDirection(slope)

	n := len(counts)
	for d := 1; d <= 7; d++ {
		projected := intercept + slope*float64(n-1+d)
		if projected > 0 {
			report.ProjectedWeek += projected
		}
	}

	return report
}

// trendDirection maps a slope to its direction label.
func trendDirection(slope float64) model.TrendDirection {
	switch {
	case slope > steadySlopeBand:
		return model.TrendGrowing
	case slope < -steadySlopeBand:
		return model.TrendDeclining
	default:
		return model.TrendSteady
	}
}

// leastSquares fits y = intercept + slope*x over x = 0..n-1.
func leastSquares(y []int) (slope, intercept float64) {
	n := float64(len(y))
	if n == 0 {
		return 0, 0
	}
	if n == 1 {
		return 0, float64(y[0])
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += float64(v)
		sumXY += x * float64(v)
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}
