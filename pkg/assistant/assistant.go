// Package assistant talks to the language model that powers plant
// diagnosis and the voice Q&A feature. Production uses the OpenAI
// client; development and tests run on the rule-based mock.
package assistant

import "context"

// DiagnosisResult is the sanitized output of a plant image analysis.
type DiagnosisResult struct {
	CropType        string   `json:"crop_type"`
	Condition       string   `json:"condition"`
	Diagnosis       string   `json:"diagnosis"`
	Confidence      int      `json:"confidence"`
	Symptoms        []string `json:"symptoms"`
	Recommendations []string `json:"recommendations"`
	TreatmentSteps  []string `json:"treatment_steps"`
	NextCheckDate   string   `json:"next_check_date,omitempty"`
}

// Client generates plant diagnoses and farming advice.
type Client interface {
	// AnalyzePlantImage diagnoses a plant from a base64-encoded JPEG.
	// cropType is an optional hint from the farmer.
	AnalyzePlantImage(ctx context.Context, base64Image, cropType string) (*DiagnosisResult, error)

	// GenerateFarmingAdvice answers a free-form farming question.
	// contextInfo optionally carries extra situation detail.
	GenerateFarmingAdvice(ctx context.Context, question, contextInfo string) (string, error)
}

// sanitize clamps and defaults a raw model response so downstream code
// never sees out-of-range confidence, unknown conditions or nil lists.
func sanitize(r *DiagnosisResult) *DiagnosisResult {
	if r.CropType == "" {
		r.CropType = "Unknown Plant"
	}
	switch r.Condition {
	case "healthy", "warning", "critical":
	default:
		r.Condition = "warning"
	}
	if r.Diagnosis == "" {
		r.Diagnosis = "Unable to determine plant condition from image"
	}
	if r.Confidence == 0 {
		r.Confidence = 50
	}
	if r.Confidence < 0 {
		r.Confidence = 0
	}
	if r.Confidence > 100 {
		r.Confidence = 100
	}
	if r.Symptoms == nil {
		r.Symptoms = []string{}
	}
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}
	if r.TreatmentSteps == nil {
		r.TreatmentSteps = []string{}
	}
	return r
}
