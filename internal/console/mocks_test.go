package console

import (
	"context"

	"github.com/maheshrc27/scheduling-console/internal/models"
	"github.com/maheshrc27/scheduling-console/internal/service"
	"github.com/maheshrc27/scheduling-console/internal/transfer"
	"github.com/stretchr/testify/mock"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) List(ctx context.Context) ([]*models.ScheduledPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ScheduledPost), args.Error(1)
}

func (m *MockPostService) Remove(ctx context.Context, postID int64) (map[string]any, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockPostService) Submit(ctx context.Context, params *transfer.ScheduleParameters) (*service.SubmitResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmitResponse), args.Error(1)
}

type MockSecretsService struct {
	mock.Mock
}

func (m *MockSecretsService) Get(ctx context.Context) (*models.IntegrationSecrets, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IntegrationSecrets), args.Error(1)
}

func (m *MockSecretsService) Create(ctx context.Context, secrets *models.IntegrationSecrets) error {
	args := m.Called(ctx, secrets)
	return args.Error(0)
}

func (m *MockSecretsService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockAssetService) PreviewURL(ctx context.Context, asset models.PostAsset) (string, error) {
	args := m.Called(ctx, asset)
	return args.String(0), args.Error(1)
}
