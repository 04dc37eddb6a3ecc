package services

import (
	"context"
	"time"

	"agrimind/models"
	"agrimind/pkg/assistant"
)

// DiagnosisService runs plant images through the AI analyzer and keeps
// the resulting diagnoses.
type DiagnosisService struct {
	store DiagnosisStore
	ai    assistant.Client
}

func NewDiagnosisService(store DiagnosisStore, ai assistant.Client) *DiagnosisService {
	return &DiagnosisService{store: store, ai: ai}
}

// DiagnoseImage analyzes a base64-encoded plant photo and persists the
// diagnosis. When the analyzer does not suggest a follow-up date, the
// next check is scheduled a week out.
func (ds *DiagnosisService) DiagnoseImage(ctx context.Context, userID, base64Image, cropType, location string) (*models.PlantDiagnosis, error) {
	result, err := ds.ai.AnalyzePlantImage(ctx, base64Image, cropType)
	if err != nil {
		return nil, err
	}

	nextCheck := time.Now().Add(7 * 24 * time.Hour)
	if result.NextCheckDate != "" {
		if parsed, err := time.Parse("2006-01-02", result.NextCheckDate); err == nil {
			nextCheck = parsed
		}
	}

	return ds.store.CreatePlantDiagnosis(models.NewPlantDiagnosis{
		UserID:          userID,
		CropType:        result.CropType,
		Condition:       models.Condition(result.Condition),
		Diagnosis:       result.Diagnosis,
		Confidence:      result.Confidence,
		Symptoms:        result.Symptoms,
		Recommendations: result.Recommendations,
		TreatmentSteps:  result.TreatmentSteps,
		NextCheckDate:   &nextCheck,
		ImageData:       base64Image,
		Location:        location,
	})
}

// Get retrieves a single diagnosis by id.
func (ds *DiagnosisService) Get(id string) (*models.PlantDiagnosis, error) {
	diagnosis, err := ds.store.GetPlantDiagnosis(id)
	if err != nil {
		return nil, err
	}
	if diagnosis == nil {
		return nil, ErrDiagnosisNotFound
	}
	return diagnosis, nil
}

// List returns the user's diagnosis history, most recent first. When
// condition is non-empty the list is filtered to exact matches.
func (ds *DiagnosisService) List(userID string, condition models.Condition) ([]*models.PlantDiagnosis, error) {
	if condition != "" {
		return ds.store.GetPlantDiagnosesByCondition(userID, condition)
	}
	return ds.store.GetUserPlantDiagnoses(userID)
}
