package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"insightdeck/internal/model"
)

// MockSurveyRepo is a mock type for the repository.SurveyRepo interface
type MockSurveyRepo struct {
	mock.Mock
}

func (m *MockSurveyRepo) Create(ctx context.Context, survey *model.Survey) error {
	args := m.Called(ctx, survey)
	return args.Error(0)
}

func (m *MockSurveyRepo) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Survey), args.Error(1)
}

func (m *MockSurveyRepo) GetByHostID(ctx context.Context, hostID string) ([]*model.Survey, error) {
	args := m.Called(ctx, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Survey), args.Error(1)
}

func (m *MockSurveyRepo) Update(ctx context.Context, survey *model.Survey) error {
	args := m.Called(ctx, survey)
	return args.Error(0)
}

func (m *MockSurveyRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockResponseRepo is a mock type for the repository.ResponseRepo interface
type MockResponseRepo struct {
	mock.Mock
}

func (m *MockResponseRepo) Create(ctx context.Context, response *model.Response) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockResponseRepo) GetByID(ctx context.Context, id string) (*model.Response, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Response), args.Error(1)
}

func (m *MockResponseRepo) GetBySurveyID(ctx context.Context, surveyID string) ([]model.Response, error) {
	args := m.Called(ctx, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Response), args.Error(1)
}

func (m *MockResponseRepo) CountBySurveyID(ctx context.Context, surveyID string) (int64, error) {
	args := m.Called(ctx, surveyID)
	return args.Get(0).(int64), args.Error(1)
}

// MockReportCache is a mock type for the cache.ReportCache interface
type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) Get(ctx context.Context, surveyID, datasetHash string) (*model.InsightsReport, error) {
	args := m.Called(ctx, surveyID, datasetHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InsightsReport), args.Error(1)
}

func (m *MockReportCache) Set(ctx context.Context, surveyID, datasetHash string, report *model.InsightsReport) error {
	args := m.Called(ctx, surveyID, datasetHash, report)
	return args.Error(0)
}

func (m *MockReportCache) Invalidate(ctx context.Context, surveyID string) error {
	args := m.Called(ctx, surveyID)
	return args.Error(0)
}

// MockBroadcaster is a mock type for the Broadcaster interface
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) BroadcastToSurvey(surveyID string, msgType string, payload interface{}) {
	m.Called(surveyID, msgType, payload)
}
