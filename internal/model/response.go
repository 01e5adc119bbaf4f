package model

import "time"

// Response is one respondent's submitted answer set.
type Response struct {
	ID                string            `json:"id" bson:"_id,omitempty"`
	SurveyID          string            `json:"surveyId" bson:"surveyId"`
	RespondentName    string            `json:"respondentName,omitempty" bson:"respondentName,omitempty"`
	RespondentContact string            `json:"respondentContact,omitempty" bson:"respondentContact,omitempty"`
	SubmittedAt       time.Time         `json:"submittedAt" bson:"submittedAt"`
	CompletionSeconds float64           `json:"completionSeconds" bson:"completionSeconds"` // 0 means unknown
	Answers           map[string]string `json:"answers" bson:"answers"`                     // question id -> answer value
}
