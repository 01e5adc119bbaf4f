package service

// Broadcaster pushes live events to survey watchers (avoids import cycle)
type Broadcaster interface {
	BroadcastToSurvey(surveyID string, msgType string, payload interface{})
}
