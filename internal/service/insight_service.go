package service

import (
	"context"

	"insightdeck/internal/cache"
	"insightdeck/internal/insights"
	"insightdeck/internal/logger"
	"insightdeck/internal/model"
	"insightdeck/internal/repository"
)

// InsightService orchestrates report computation: it assembles the
// dataset from the stores, consults the memoization cache, and runs the
// engine on a miss. It returns either the full report or an error, never
// a partial result.
type InsightService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
	reportCache  cache.ReportCache
	engine       *insights.Engine
	broadcaster  Broadcaster
	log          *logger.Logger
}

// NewInsightService creates a new insight service
func NewInsightService(
	surveyRepo repository.SurveyRepo,
	responseRepo repository.ResponseRepo,
	reportCache cache.ReportCache,
	log *logger.Logger,
) *InsightService {
	return &InsightService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		reportCache:  reportCache,
		engine:       insights.NewEngine(),
		log:          log,
	}
}

// SetBroadcaster injects the live event sink
func (s *InsightService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// GetReport returns the insights report for a survey. refresh bypasses
// the cache read but still writes the recomputed report back.
func (s *InsightService) GetReport(ctx context.Context, hostID, surveyID string, refresh bool) (*model.InsightsReport, error) {
	dataset, err := s.BuildDataset(ctx, hostID, surveyID)
	if err != nil {
		return nil, err
	}

	hash := insights.DatasetHash(dataset)

	if !refresh {
		cached, err := s.reportCache.Get(ctx, surveyID, hash)
		if err != nil {
			// Cache trouble degrades to compute-only; the store is the
			// source of truth.
			s.log.WithError(err).WithField("surveyId", surveyID).Warn("report cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	report := s.engine.BuildReport(dataset)

	if err := s.reportCache.Set(ctx, surveyID, hash, report); err != nil {
		s.log.WithError(err).WithField("surveyId", surveyID).Warn("report cache write failed")
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSurvey(surveyID, "insights_ready", map[string]interface{}{
			"surveyId":      surveyID,
			"responseCount": report.ResponseCount,
			"generatedAt":   report.GeneratedAt,
		})
	}

	return report, nil
}

// BuildDataset loads the survey and all of its responses. Fails whole on
// any store error.
func (s *InsightService) BuildDataset(ctx context.Context, hostID, surveyID string) (*model.SurveyDataset, error) {
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

	responses, err := s.responseRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	return &model.SurveyDataset{
		SurveyID:  surveyID,
		Questions: survey.Questions,
		Responses: responses,
	}, nil
}
