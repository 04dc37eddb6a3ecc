package services

import (
	"time"

	"agrimind/models"
)

// DiagnosisStore is the slice of the persistence contract the diagnosis
// service needs.
type DiagnosisStore interface {
	CreatePlantDiagnosis(nd models.NewPlantDiagnosis) (*models.PlantDiagnosis, error)
	GetPlantDiagnosis(id string) (*models.PlantDiagnosis, error)
	GetUserPlantDiagnoses(userID string) ([]*models.PlantDiagnosis, error)
	GetPlantDiagnosesByCondition(userID string, condition models.Condition) ([]*models.PlantDiagnosis, error)
}

// ConversationStore persists voice Q&A sessions.
type ConversationStore interface {
	CreateVoiceConversation(nc models.NewVoiceConversation) (*models.VoiceConversation, error)
	GetUserVoiceConversations(userID string) ([]*models.VoiceConversation, error)
}

// ActivityStore persists the crop activity calendar.
type ActivityStore interface {
	CreateCropActivity(na models.NewCropActivity) (*models.CropActivity, error)
	GetCropActivity(id string) (*models.CropActivity, error)
	GetUserCropActivities(userID string) ([]*models.CropActivity, error)
	GetUserCropActivitiesByStatus(userID string, status models.ActivityStatus) ([]*models.CropActivity, error)
	UpdateActivityStatus(id string, status models.ActivityStatus, completedDate *time.Time) (*models.CropActivity, error)
}

// WeatherStore is the cache side of the weather lookup.
type WeatherStore interface {
	CreateWeatherData(nw models.NewWeatherData) (*models.WeatherData, error)
	GetWeatherDataByLocation(location string) (*models.WeatherData, error)
	GetValidWeatherData(location string) (*models.WeatherData, error)
}
