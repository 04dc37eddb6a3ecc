package assistant

import (
	"context"
	"strings"
	"time"
)

// mockClient answers without any network call. Used when no API key is
// configured and in tests.
type mockClient struct{}

// NewMock returns a rule-based assistant client.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) AnalyzePlantImage(_ context.Context, _ string, cropType string) (*DiagnosisResult, error) {
	result := &DiagnosisResult{
		CropType:   cropType,
		Condition:  "healthy",
		Diagnosis:  "The plant shows good color and leaf structure with no visible disease symptoms.",
		Confidence: 70,
		Symptoms:   []string{},
		Recommendations: []string{
			"Maintain the current watering schedule",
			"Check the underside of leaves weekly for early pest signs",
		},
		TreatmentSteps: []string{},
		NextCheckDate:  time.Now().Add(7 * 24 * time.Hour).Format("2006-01-02"),
	}
	return sanitize(result), nil
}

func (m *mockClient) GenerateFarmingAdvice(_ context.Context, question, _ string) (string, error) {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "water") || strings.Contains(q, "irrigat"):
		return "Water deeply but less frequently, early in the morning to limit evaporation. Check soil moisture at a finger's depth before watering again, and mulch around the base to hold moisture.", nil
	case strings.Contains(q, "pest") || strings.Contains(q, "insect"):
		return "Inspect the underside of leaves for eggs and larvae, and remove affected leaves by hand. A weekly spray of neem oil solution is a low-cost option that spares beneficial insects.", nil
	case strings.Contains(q, "fertiliz") || strings.Contains(q, "manure"):
		return "Well-rotted compost or animal manure worked into the topsoil before planting covers most nutrient needs. Top-dress nitrogen-hungry crops like maize about four weeks after emergence.", nil
	case strings.Contains(q, "plant") || strings.Contains(q, "sow"):
		return "Plant at the onset of the rains when the soil has moistened to at least 15 cm depth. Space rows generously for airflow, which cuts fungal pressure later in the season.", nil
	default:
		return "Monitor your crops closely and act early: most problems are cheap to fix when caught in the first week. If you can, share a photo of the affected plants for a more specific diagnosis.", nil
	}
}
