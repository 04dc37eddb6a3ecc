package models

import "time"

// Condition classifies the health of a diagnosed plant.
type Condition string

const (
	ConditionHealthy  Condition = "healthy"
	ConditionWarning  Condition = "warning"
	ConditionCritical Condition = "critical"
)

// Valid reports whether c is a known condition value.
func (c Condition) Valid() bool {
	return c == ConditionHealthy || c == ConditionWarning || c == ConditionCritical
}

// ActivityStatus is the lifecycle state of a crop activity.
// Activities start pending and move to completed or cancelled.
type ActivityStatus string

const (
	StatusPending   ActivityStatus = "pending"
	StatusCompleted ActivityStatus = "completed"
	StatusCancelled ActivityStatus = "cancelled"
)

// Valid reports whether s is a known status value.
func (s ActivityStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted || s == StatusCancelled
}

// Priority of a scheduled crop activity.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PlantDiagnosis struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id,omitempty"`
	CropType        string     `json:"crop_type"`
	Condition       Condition  `json:"condition"`
	Diagnosis       string     `json:"diagnosis"`
	Confidence      int        `json:"confidence"`
	Symptoms        []string   `json:"symptoms"`
	Recommendations []string   `json:"recommendations"`
	TreatmentSteps  []string   `json:"treatment_steps"`
	NextCheckDate   *time.Time `json:"next_check_date,omitempty"`
	ImageData       string     `json:"image_data,omitempty"`
	Location        string     `json:"location,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type VoiceConversation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Language  string    `json:"language"`
	AudioData string    `json:"audio_data,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CropActivity struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id,omitempty"`
	Crop             string         `json:"crop"`
	Activity         string         `json:"activity"`
	Description      string         `json:"description"`
	ScheduledDate    time.Time      `json:"scheduled_date"`
	CompletedDate    *time.Time     `json:"completed_date,omitempty"`
	Status           ActivityStatus `json:"status"`
	Priority         Priority       `json:"priority"`
	WeatherDependent bool           `json:"weather_dependent"`
	Notes            string         `json:"notes,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// WeatherData is a cached weather lookup for a location. The entry is
// valid only strictly before ExpiresAt; expired entries are skipped at
// read time and never removed.
type WeatherData struct {
	ID            string        `json:"id"`
	Location      string        `json:"location"`
	WeatherInfo   WeatherReport `json:"weather_info"`
	FarmingAdvice []string      `json:"farming_advice"`
	CreatedAt     time.Time     `json:"created_at"`
	ExpiresAt     time.Time     `json:"expires_at"`
}

// NewUser holds caller-supplied fields for user creation. The store
// assigns id and created_at.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Location string `json:"location,omitempty"`
}

type NewPlantDiagnosis struct {
	UserID          string     `json:"user_id,omitempty"`
	CropType        string     `json:"crop_type"`
	Condition       Condition  `json:"condition"`
	Diagnosis       string     `json:"diagnosis"`
	Confidence      int        `json:"confidence"`
	Symptoms        []string   `json:"symptoms"`
	Recommendations []string   `json:"recommendations"`
	TreatmentSteps  []string   `json:"treatment_steps"`
	NextCheckDate   *time.Time `json:"next_check_date,omitempty"`
	ImageData       string     `json:"image_data,omitempty"`
	Location        string     `json:"location,omitempty"`
}

type NewVoiceConversation struct {
	UserID    string `json:"user_id,omitempty"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Language  string `json:"language,omitempty"`
	AudioData string `json:"audio_data,omitempty"`
}

type NewCropActivity struct {
	UserID           string         `json:"user_id,omitempty"`
	Crop             string         `json:"crop"`
	Activity         string         `json:"activity"`
	Description      string         `json:"description"`
	ScheduledDate    time.Time      `json:"scheduled_date"`
	CompletedDate    *time.Time     `json:"completed_date,omitempty"`
	Status           ActivityStatus `json:"status,omitempty"`
	Priority         Priority       `json:"priority,omitempty"`
	WeatherDependent bool           `json:"weather_dependent"`
	Notes            string         `json:"notes,omitempty"`
}

type NewWeatherData struct {
	Location      string        `json:"location"`
	WeatherInfo   WeatherReport `json:"weather_info"`
	FarmingAdvice []string      `json:"farming_advice"`
	ExpiresAt     time.Time     `json:"expires_at"`
}

// CreateActivityRequest is the JSON payload for POST /api/activities.
type CreateActivityRequest struct {
	Crop             string `json:"crop" validate:"required,max=100"`
	Activity         string `json:"activity" validate:"required,activitytype"`
	Description      string `json:"description" validate:"required,max=500"`
	ScheduledDate    string `json:"scheduled_date" validate:"required,dateformat"`
	Status           string `json:"status" validate:"omitempty,activitystatus"`
	Priority         string `json:"priority" validate:"omitempty,priority"`
	WeatherDependent bool   `json:"weather_dependent"`
	Notes            string `json:"notes" validate:"max=1000"`
}

// UpdateActivityStatusRequest is the JSON payload for
// PATCH /api/activities/:id/status.
type UpdateActivityStatusRequest struct {
	Status string `json:"status" validate:"required,activitystatus"`
}

// AskRequest is the JSON payload for POST /api/voice/ask.
type AskRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
	Language string `json:"language" validate:"max=50"`
}
