package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"insightdeck/internal/model"
	"insightdeck/internal/repository"
)

var (
	ErrSurveyNotOpen = errors.New("survey is not accepting responses")
	ErrNoAnswers     = errors.New("response contains no answers")
)

// ResponseService accepts and stores respondent submissions
type ResponseService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
	broadcaster  Broadcaster
}

// NewResponseService creates a new response service
func NewResponseService(surveyRepo repository.SurveyRepo, responseRepo repository.ResponseRepo) *ResponseService {
	return &ResponseService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
	}
}

// SetBroadcaster injects the live event sink
func (s *ResponseService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit stores one respondent's answer set. The submission timestamp is
// stamped server-side; answers referencing unknown questions are kept as
// submitted and ignored later by the analyzers.
func (s *ResponseService) Submit(ctx context.Context, surveyID string, response *model.Response) (*model.Response, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	if !survey.Published {
		return nil, ErrSurveyNotOpen
	}
	if len(response.Answers) == 0 {
		return nil, ErrNoAnswers
	}

	response.ID = uuid.New().String()
	response.SurveyID = surveyID
	response.SubmittedAt = time.Now()
	if response.CompletionSeconds < 0 {
		response.CompletionSeconds = 0
	}

	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSurvey(surveyID, "response_received", map[string]interface{}{
			"responseId":  response.ID,
			"submittedAt": response.SubmittedAt,
		})
	}

	return response, nil
}

// ListBySurvey returns every stored response for a survey
func (s *ResponseService) ListBySurvey(ctx context.Context, surveyID string) ([]model.Response, error) {
	return s.responseRepo.GetBySurveyID(ctx, surveyID)
}
