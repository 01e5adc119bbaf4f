package model

import "time"

// QuestionKind defines the type of question
type QuestionKind string

const (
	QuestionKindChoice   QuestionKind = "CHOICE"    // Fixed option list
	QuestionKindFreeText QuestionKind = "FREE_TEXT" // Open text answer
)

// Question is a question template in a survey. Immutable once the survey
// is published.
type Question struct {
	ID      string       `json:"id" bson:"id"`
	Text    string       `json:"text" bson:"text"`
	Kind    QuestionKind `json:"kind" bson:"kind"`
	Options []string     `json:"options,omitempty" bson:"options,omitempty"` // CHOICE only, ordered
}

// Survey is a persistent template created by a host
type Survey struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	HostID    string     `json:"hostId" bson:"hostId"`
	Title     string     `json:"title" bson:"title"`
	Topic     string     `json:"topic" bson:"topic"` // Scope/purpose description
	Questions []Question `json:"questions" bson:"questions"`
	Published bool       `json:"published" bson:"published"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// SurveyDataset is one survey's questions plus every collected response.
// It is the sole input to the insights engine; nothing mutates it.
type SurveyDataset struct {
	SurveyID  string     `json:"surveyId"`
	Questions []Question `json:"questions"`
	Responses []Response `json:"responses"`
}
