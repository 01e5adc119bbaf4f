package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"insightdeck/internal/cache"
	"insightdeck/internal/model"
	"insightdeck/internal/repository"
)

var (
	ErrSurveyNotFound  = errors.New("survey not found")
	ErrSurveyPublished = errors.New("published surveys cannot be edited")
	ErrNoQuestions     = errors.New("survey needs at least one question")
	ErrInvalidQuestion = errors.New("choice questions need at least two options")
	ErrNotSurveyOwner  = errors.New("survey belongs to another host")
)

// SurveyService manages survey templates
type SurveyService struct {
	surveyRepo  repository.SurveyRepo
	reportCache cache.ReportCache
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveyRepo repository.SurveyRepo, reportCache cache.ReportCache) *SurveyService {
	return &SurveyService{
		surveyRepo:  surveyRepo,
		reportCache: reportCache,
	}
}

// Create validates and stores a new survey draft
func (s *SurveyService) Create(ctx context.Context, hostID, title, topic string, questions []model.Question) (*model.Survey, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	survey := &model.Survey{
		ID:        uuid.New().String(),
		HostID:    hostID,
		Title:     title,
		Topic:     topic,
		Questions: questions,
	}
	for i := range survey.Questions {
		if survey.Questions[i].ID == "" {
			survey.Questions[i].ID = uuid.New().String()
		}
	}

	if err := s.surveyRepo.Create(ctx, survey); err != nil {
		return nil, err
	}
	return survey, nil
}

// Get returns a survey owned by the host
func (s *SurveyService) Get(ctx context.Context, hostID, surveyID string) (*model.Survey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	if survey.HostID != hostID {
		return nil, ErrNotSurveyOwner
	}
	return survey, nil
}

// List returns all surveys for a host
func (s *SurveyService) List(ctx context.Context, hostID string) ([]*model.Survey, error) {
	return s.surveyRepo.GetByHostID(ctx, hostID)
}

// Update replaces a draft survey's content. The question list is frozen
// once the survey is published, and publication state only changes
// through Publish.
func (s *SurveyService) Update(ctx context.Context, hostID string, survey *model.Survey) error {
	existing, err := s.Get(ctx, hostID, survey.ID)
	if err != nil {
		return err
	}
	if existing.Published {
		return ErrSurveyPublished
	}
	if err := validateQuestions(survey.Questions); err != nil {
		return err
	}
	survey.HostID = hostID
	survey.Published = existing.Published
	survey.CreatedAt = existing.CreatedAt
	if err := s.surveyRepo.Update(ctx, survey); err != nil {
		return err
	}
	s.dropCachedReports(ctx, survey.ID)
	return nil
}

// Publish freezes the survey and opens it for responses
func (s *SurveyService) Publish(ctx context.Context, hostID, surveyID string) (*model.Survey, error) {
	survey, err := s.Get(ctx, hostID, surveyID)
	if err != nil {
		return nil, err
	}
	if len(survey.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	if survey.Published {
		return survey, nil
	}
	survey.Published = true
	if err := s.surveyRepo.Update(ctx, survey); err != nil {
		return nil, err
	}
	s.dropCachedReports(ctx, survey.ID)
	return survey, nil
}

// dropCachedReports evicts memoized reports after a survey edit. The
// cache is keyed by dataset content, so this only frees stale entries
// early; a miss on the next read is already guaranteed by the key.
func (s *SurveyService) dropCachedReports(ctx context.Context, surveyID string) {
	if s.reportCache == nil {
		return
	}
	_ = s.reportCache.Invalidate(ctx, surveyID)
}

func validateQuestions(questions []model.Question) error {
	for _, q := range questions {
		if q.Kind == model.QuestionKindChoice && len(q.Options) < 2 {
			return ErrInvalidQuestion
		}
	}
	return nil
}
