// Package storage provides the application's persistence layer. The
// only implementation is the in-memory MemStore; the Store interface
// exists so services and handlers depend on the contract rather than the
// concrete store, and so tests can substitute mocks. Relationships
// between collections are soft: user_id fields are plain identifiers
// with no existence check, kept behind this interface so a future
// implementation could add referential validation without touching
// callers.
package storage

import (
	"time"

	"agrimind/models"
)

// Store is the full persistence contract. Lookups signal "not found" by
// returning a nil record with a nil error; callers must check before
// use. Create operations assign ids and timestamps internally and never
// reject input; malformed optional fields are coerced to documented
// defaults instead.
type Store interface {
	// Users
	CreateUser(nu models.NewUser) (*models.User, error)
	GetUser(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)

	// Plant diagnoses
	CreatePlantDiagnosis(nd models.NewPlantDiagnosis) (*models.PlantDiagnosis, error)
	GetPlantDiagnosis(id string) (*models.PlantDiagnosis, error)
	GetUserPlantDiagnoses(userID string) ([]*models.PlantDiagnosis, error)
	GetPlantDiagnosesByCondition(userID string, condition models.Condition) ([]*models.PlantDiagnosis, error)

	// Voice conversations
	CreateVoiceConversation(nc models.NewVoiceConversation) (*models.VoiceConversation, error)
	GetUserVoiceConversations(userID string) ([]*models.VoiceConversation, error)

	// Crop activities
	CreateCropActivity(na models.NewCropActivity) (*models.CropActivity, error)
	GetCropActivity(id string) (*models.CropActivity, error)
	GetUserCropActivities(userID string) ([]*models.CropActivity, error)
	GetUserCropActivitiesByStatus(userID string, status models.ActivityStatus) ([]*models.CropActivity, error)
	UpdateActivityStatus(id string, status models.ActivityStatus, completedDate *time.Time) (*models.CropActivity, error)

	// Weather cache
	CreateWeatherData(nw models.NewWeatherData) (*models.WeatherData, error)
	GetWeatherDataByLocation(location string) (*models.WeatherData, error)
	GetValidWeatherData(location string) (*models.WeatherData, error)
}

var _ Store = (*MemStore)(nil)
