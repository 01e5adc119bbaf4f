package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"insightdeck/internal/insights"
	"insightdeck/internal/logger"
	"insightdeck/internal/model"
)

func insightTestFixture() (*model.Survey, []model.Response, string) {
	survey := &model.Survey{
		ID: "s1", HostID: "host_1", Published: true,
		Questions: []model.Question{
			{ID: "q1", Kind: model.QuestionKindChoice, Options: []string{"A", "B"}},
			{ID: "q2", Kind: model.QuestionKindFreeText},
		},
	}
	responses := []model.Response{
		{
			ID: "r1", SurveyID: "s1", CompletionSeconds: 90,
			SubmittedAt: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
			Answers:     map[string]string{"q1": "A", "q2": "Really great overall."},
		},
	}
	hash := insights.DatasetHash(&model.SurveyDataset{
		SurveyID:  "s1",
		Questions: survey.Questions,
		Responses: responses,
	})
	return survey, responses, hash
}

func TestInsightService_GetReport(t *testing.T) {
	ctx := context.Background()
	log := logger.New()

	t.Run("Cache hit returns the memoized report", func(t *testing.T) {
		survey, responses, hash := insightTestFixture()
		mockSurveys := new(MockSurveyRepo)
		mockResponses := new(MockResponseRepo)
		mockCache := new(MockReportCache)
		svc := NewInsightService(mockSurveys, mockResponses, mockCache, log)

		cached := &model.InsightsReport{SurveyID: "s1", ResponseCount: 1}
		mockSurveys.On("GetByID", ctx, "s1").Return(survey, nil).Once()
		mockResponses.On("GetBySurveyID", ctx, "s1").Return(responses, nil).Once()
		mockCache.On("Get", ctx, "s1", hash).Return(cached, nil).Once()

		report, err := svc.GetReport(ctx, "host_1", "s1", false)
		assert.NoError(t, err)
		assert.Same(t, cached, report)
		mockCache.AssertNotCalled(t, "Set")
	})

	t.Run("Cache miss computes and stores the report", func(t *testing.T) {
		survey, responses, hash := insightTestFixture()
		mockSurveys := new(MockSurveyRepo)
		mockResponses := new(MockResponseRepo)
		mockCache := new(MockReportCache)
		mockBroadcaster := new(MockBroadcaster)
		svc := NewInsightService(mockSurveys, mockResponses, mockCache, log)
		svc.SetBroadcaster(mockBroadcaster)

		mockSurveys.On("GetByID", ctx, "s1").Return(survey, nil).Once()
		mockResponses.On("GetBySurveyID", ctx, "s1").Return(responses, nil).Once()
		mockCache.On("Get", ctx, "s1", hash).Return(nil, nil).Once()
		mockCache.On("Set", ctx, "s1", hash, mock.AnythingOfType("*model.InsightsReport")).Return(nil).Once()
		mockBroadcaster.On("BroadcastToSurvey", "s1", "insights_ready", mock.Anything).Once()

		report, err := svc.GetReport(ctx, "host_1", "s1", false)
		assert.NoError(t, err)
		assert.Equal(t, "s1", report.SurveyID)
		assert.Equal(t, 1, report.ResponseCount)
		mockCache.AssertExpectations(t)
		mockBroadcaster.AssertExpectations(t)
	})

	t.Run("Refresh bypasses the cache read but still writes back", func(t *testing.T) {
		survey, responses, hash := insightTestFixture()
		mockSurveys := new(MockSurveyRepo)
		mockResponses := new(MockResponseRepo)
		mockCache := new(MockReportCache)
		svc := NewInsightService(mockSurveys, mockResponses, mockCache, log)

		mockSurveys.On("GetByID", ctx, "s1").Return(survey, nil).Once()
		mockResponses.On("GetBySurveyID", ctx, "s1").Return(responses, nil).Once()
		mockCache.On("Set", ctx, "s1", hash, mock.AnythingOfType("*model.InsightsReport")).Return(nil).Once()

		report, err := svc.GetReport(ctx, "host_1", "s1", true)
		assert.NoError(t, err)
		assert.NotNil(t, report)
		mockCache.AssertNotCalled(t, "Get")
		mockCache.AssertExpectations(t)
	})

	t.Run("Cache failures degrade to compute-only", func(t *testing.T) {
		survey, responses, hash := insightTestFixture()
		mockSurveys := new(MockSurveyRepo)
		mockResponses := new(MockResponseRepo)
		mockCache := new(MockReportCache)
		svc := NewInsightService(mockSurveys, mockResponses, mockCache, log)

		mockSurveys.On("GetByID", ctx, "s1").Return(survey, nil).Once()
		mockResponses.On("GetBySurveyID", ctx, "s1").Return(responses, nil).Once()
		mockCache.On("Get", ctx, "s1", hash).Return(nil, errors.New("redis down")).Once()
		mockCache.On("Set", ctx, "s1", hash, mock.Anything).Return(errors.New("redis down")).Once()

		report, err := svc.GetReport(ctx, "host_1", "s1", false)
		assert.NoError(t, err)
		assert.Equal(t, 1, report.ResponseCount)
	})

	t.Run("Store failures fail the whole report", func(t *testing.T) {
		survey, _, _ := insightTestFixture()
		mockSurveys := new(MockSurveyRepo)
		mockResponses := new(MockResponseRepo)
		mockCache := new(MockReportCache)
		svc := NewInsightService(mockSurveys, mockResponses, mockCache, log)

		mockSurveys.On("GetByID", ctx, "s1").Return(survey, nil).Once()
		mockResponses.On("GetBySurveyID", ctx, "s1").Return(nil, errors.New("mongo down")).Once()

		_, err := svc.GetReport(ctx, "host_1", "s1", false)
		assert.Error(t, err)
		mockCache.AssertNotCalled(t, "Get")
		mockCache.AssertNotCalled(t, "Set")
	})
}

func TestInsightService_BuildDataset(t *testing.T) {
	ctx := context.Background()
	log := logger.New()

	t.Run("Unknown survey", func(t *testing.T) {
		mockSurveys := new(MockSurveyRepo)
		mockResponses := new(MockResponseRepo)
		svc := NewInsightService(mockSurveys, mockResponses, new(MockReportCache), log)

		mockSurveys.On("GetByID", ctx, "missing").Return(nil, nil).Once()

		_, err := svc.BuildDataset(ctx, "host_1", "missing")
		assert.ErrorIs(t, err, ErrSurveyNotFound)
	})

	t.Run("Ownership is enforced", func(t *testing.T) {
		survey, _, _ := insightTestFixture()
		mockSurveys := new(MockSurveyRepo)
		mockResponses := new(MockResponseRepo)
		svc := NewInsightService(mockSurveys, mockResponses, new(MockReportCache), log)

		mockSurveys.On("GetByID", ctx, "s1").Return(survey, nil).Once()

		_, err := svc.BuildDataset(ctx, "host_2", "s1")
		assert.ErrorIs(t, err, ErrNotSurveyOwner)
		mockResponses.AssertNotCalled(t, "GetBySurveyID")
	})

	t.Run("Assembles the dataset from both stores", func(t *testing.T) {
		survey, responses, _ := insightTestFixture()
		mockSurveys := new(MockSurveyRepo)
		mockResponses := new(MockResponseRepo)
		svc := NewInsightService(mockSurveys, mockResponses, new(MockReportCache), log)

		mockSurveys.On("GetByID", ctx, "s1").Return(survey, nil).Once()
		mockResponses.On("GetBySurveyID", ctx, "s1").Return(responses, nil).Once()

		dataset, err := svc.BuildDataset(ctx, "host_1", "s1")
		assert.NoError(t, err)
		assert.Equal(t, "s1", dataset.SurveyID)
		assert.Equal(t, survey.Questions, dataset.Questions)
		assert.Equal(t, responses, dataset.Responses)
	})
}
