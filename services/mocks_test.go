package services

import (
	"context"
	"time"

	"agrimind/models"
	"agrimind/pkg/assistant"
	"agrimind/pkg/forecast"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of the store interfaces used by
// the services in this package.
type MockStore struct {
	mock.Mock
}

var (
	_ DiagnosisStore    = (*MockStore)(nil)
	_ ConversationStore = (*MockStore)(nil)
	_ ActivityStore     = (*MockStore)(nil)
	_ WeatherStore      = (*MockStore)(nil)
)

func (m *MockStore) CreatePlantDiagnosis(nd models.NewPlantDiagnosis) (*models.PlantDiagnosis, error) {
	args := m.Called(nd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlantDiagnosis), args.Error(1)
}

func (m *MockStore) GetPlantDiagnosis(id string) (*models.PlantDiagnosis, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlantDiagnosis), args.Error(1)
}

func (m *MockStore) GetUserPlantDiagnoses(userID string) ([]*models.PlantDiagnosis, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PlantDiagnosis), args.Error(1)
}

func (m *MockStore) GetPlantDiagnosesByCondition(userID string, condition models.Condition) ([]*models.PlantDiagnosis, error) {
	args := m.Called(userID, condition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PlantDiagnosis), args.Error(1)
}

func (m *MockStore) CreateVoiceConversation(nc models.NewVoiceConversation) (*models.VoiceConversation, error) {
	args := m.Called(nc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VoiceConversation), args.Error(1)
}

func (m *MockStore) GetUserVoiceConversations(userID string) ([]*models.VoiceConversation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.VoiceConversation), args.Error(1)
}

func (m *MockStore) CreateCropActivity(na models.NewCropActivity) (*models.CropActivity, error) {
	args := m.Called(na)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CropActivity), args.Error(1)
}

func (m *MockStore) GetCropActivity(id string) (*models.CropActivity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CropActivity), args.Error(1)
}

func (m *MockStore) GetUserCropActivities(userID string) ([]*models.CropActivity, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CropActivity), args.Error(1)
}

func (m *MockStore) GetUserCropActivitiesByStatus(userID string, status models.ActivityStatus) ([]*models.CropActivity, error) {
	args := m.Called(userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CropActivity), args.Error(1)
}

func (m *MockStore) UpdateActivityStatus(id string, status models.ActivityStatus, completedDate *time.Time) (*models.CropActivity, error) {
	args := m.Called(id, status, completedDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CropActivity), args.Error(1)
}

func (m *MockStore) CreateWeatherData(nw models.NewWeatherData) (*models.WeatherData, error) {
	args := m.Called(nw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherData), args.Error(1)
}

func (m *MockStore) GetWeatherDataByLocation(location string) (*models.WeatherData, error) {
	args := m.Called(location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherData), args.Error(1)
}

func (m *MockStore) GetValidWeatherData(location string) (*models.WeatherData, error) {
	args := m.Called(location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherData), args.Error(1)
}

// MockAssistant is a mock implementation of assistant.Client.
type MockAssistant struct {
	mock.Mock
}

var _ assistant.Client = (*MockAssistant)(nil)

func (m *MockAssistant) AnalyzePlantImage(ctx context.Context, base64Image, cropType string) (*assistant.DiagnosisResult, error) {
	args := m.Called(ctx, base64Image, cropType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assistant.DiagnosisResult), args.Error(1)
}

func (m *MockAssistant) GenerateFarmingAdvice(ctx context.Context, question, contextInfo string) (string, error) {
	args := m.Called(ctx, question, contextInfo)
	return args.String(0), args.Error(1)
}

// MockForecast is a mock implementation of forecast.Source.
type MockForecast struct {
	mock.Mock
}

var _ forecast.Source = (*MockForecast)(nil)

func (m *MockForecast) Report(ctx context.Context, location string) (*models.WeatherReport, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherReport), args.Error(1)
}
