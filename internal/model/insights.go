package model

import "time"

// SentimentLabel classifies the polarity of a text
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// SentimentScore is the result of scoring one block of text
type SentimentScore struct {
	Label      SentimentLabel `json:"label"`
	Compound   float64        `json:"compound"`   // -1..1, net polarity
	Confidence float64        `json:"confidence"` // 0..1, saturates at 3 lexicon matches
}

// SentimentSummary aggregates sentiment over every free-text answer
type SentimentSummary struct {
	Overall         SentimentLabel `json:"overall"`
	AverageCompound float64        `json:"averageCompound"`
	PositiveCount   int            `json:"positiveCount"`
	NeutralCount    int            `json:"neutralCount"`
	NegativeCount   int            `json:"negativeCount"`
	ScoredTexts     int            `json:"scoredTexts"` // texts with at least one lexicon match counted too
}

// FeatureVector is the derived per-response feature set. Recomputed on
// every analysis run, never persisted.
type FeatureVector struct {
	CompletionSeconds  float64 `json:"completionSeconds"`
	AnswerVarietyRatio float64 `json:"answerVarietyRatio"` // distinct / total non-empty answers
	TextEngagement     float64 `json:"textEngagement"`     // avg free-text length / 100
	CompletionRatio    float64 `json:"completionRatio"`    // answered / total questions
	IsAnonymous        bool    `json:"isAnonymous"`
}

// Segment is a named group of respondents matching one behavioral rule.
// Segments are overlap-tolerant: a respondent may appear in several.
type Segment struct {
	Name        string   `json:"name"`
	Size        int      `json:"size"`
	Percentage  float64  `json:"percentage"` // of all respondents
	ResponseIDs []string `json:"responseIds"`
	Traits      []string `json:"traits"` // static descriptions of the rule
}

// AnomalyKind identifies which detector pass produced an anomaly
type AnomalyKind string

const (
	AnomalyTime    AnomalyKind = "time"
	AnomalyQuality AnomalyKind = "quality"
	AnomalyPattern AnomalyKind = "pattern"
)

// AnomalySeverity grades an anomaly
type AnomalySeverity string

const (
	SeverityMedium   AnomalySeverity = "medium"
	SeverityHigh     AnomalySeverity = "high"
	SeverityCritical AnomalySeverity = "critical"
)

// Anomaly is an aggregate flag for a class of outlying responses, not a
// per-response verdict.
type Anomaly struct {
	Kind                AnomalyKind     `json:"kind"`
	Description         string          `json:"description"`
	Severity            AnomalySeverity `json:"severity"`
	AffectedResponseIDs []string        `json:"affectedResponseIds"`
	Confidence          float64         `json:"confidence"`
	SuggestedAction     string          `json:"suggestedAction"`
}

// AnswerCount is one observed answer value with its tally
type AnswerCount struct {
	Value string  `json:"value"`
	Count int     `json:"count"`
	Share float64 `json:"share"` // of all non-empty answers to the question
}

// QuestionFrequency reports the most and least common answers to a question
type QuestionFrequency struct {
	QuestionID   string      `json:"questionId"`
	QuestionText string      `json:"questionText"`
	MostCommon   AnswerCount `json:"mostCommon"`
	LeastCommon  AnswerCount `json:"leastCommon"`
	TotalAnswers int         `json:"totalAnswers"`
}

// QuestionSkipRate is the percentage of respondents who left a question blank
type QuestionSkipRate struct {
	QuestionID    string  `json:"questionId"`
	QuestionText  string  `json:"questionText"`
	AnsweredCount int     `json:"answeredCount"`
	SkipRate      float64 `json:"skipRate"` // 0-100
}

// LengthDistribution buckets free-text answer lengths
type LengthDistribution struct {
	Short  int     `json:"short"`  // < 50 chars
	Medium int     `json:"medium"` // 50-200 chars
	Long   int     `json:"long"`   // > 200 chars
	Min    int     `json:"min"`
	Avg    float64 `json:"avg"`
	Max    int     `json:"max"`
}

// TemporalDistribution buckets responses by submission time
type TemporalDistribution struct {
	ByHour    map[int]int    `json:"byHour"`    // hour of day -> count
	ByWeekday map[string]int `json:"byWeekday"` // weekday name -> count
	PeakHours []int          `json:"peakHours"` // top 3 hours by volume
}

// QualityClass grades a single response's completeness
type QualityClass string

const (
	QualityHigh   QualityClass = "high"   // >= 80%
	QualityMedium QualityClass = "medium" // >= 50%
	QualityLow    QualityClass = "low"
)

// ResponseQuality is one response's quality score
type ResponseQuality struct {
	ResponseID string       `json:"responseId"`
	Score      float64      `json:"score"` // 0-100
	Class      QualityClass `json:"class"`
}

// QualitySummary aggregates per-response quality classes
type QualitySummary struct {
	HighCount    int               `json:"highCount"`
	MediumCount  int               `json:"mediumCount"`
	LowCount     int               `json:"lowCount"`
	OverallScore float64           `json:"overallScore"` // weighted blend, 0-100
	PerResponse  []ResponseQuality `json:"perResponse"`
}

// TermCount is one free-text term with its occurrence count
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// PatternReport holds the aggregate answer statistics
type PatternReport struct {
	Frequencies []QuestionFrequency  `json:"frequencies"`
	SkipRates   []QuestionSkipRate   `json:"skipRates"`
	Lengths     LengthDistribution   `json:"lengths"`
	Temporal    TemporalDistribution `json:"temporal"`
	TopTerms    []TermCount          `json:"topTerms"` // most frequent free-text terms
	Quality     QualitySummary       `json:"quality"`
}

// DailyCount is one day's response volume
type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// TrendDirection labels the response-velocity slope
type TrendDirection string

const (
	TrendGrowing   TrendDirection = "growing"
	TrendDeclining TrendDirection = "declining"
	TrendSteady    TrendDirection = "steady"
)

// TrendReport is a least-squares extrapolation of response velocity
type TrendReport struct {
	Daily         []DailyCount   `json:"daily"`
	Slope         float64        `json:"slope"` // responses per day
	ProjectedWeek float64        `json:"projectedWeek"`
	Direction     TrendDirection `json:"direction"`
}

// InsightsReport is the full derived analytics output for one survey.
// Recomputed in full on every request; it has no lifecycle of its own.
type InsightsReport struct {
	SurveyID      string           `json:"surveyId"`
	GeneratedAt   time.Time        `json:"generatedAt"`
	ResponseCount int              `json:"responseCount"`
	Sentiment     SentimentSummary `json:"sentiment"`
	Segments      []Segment        `json:"segments"`
	Anomalies     []Anomaly        `json:"anomalies"`
	Patterns      PatternReport    `json:"patterns"`
	Trends        TrendReport      `json:"trends"`
	QualityScore  float64          `json:"qualityScore"`
}
