package app

import (
	"log/slog"

	"agrimind/services"
	"agrimind/storage"
	"agrimind/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Store      storage.Store
	Diagnosis  *services.DiagnosisService
	Voice      *services.VoiceService
	Activity   *services.ActivityService
	Weather    *services.WeatherService
	Validator  *validator.Validator
	Logger     *slog.Logger
	DemoUserID string
}

// New creates a new App instance with all dependencies
func New(store storage.Store, diagnosis *services.DiagnosisService, voice *services.VoiceService, activity *services.ActivityService, weather *services.WeatherService, logger *slog.Logger) *App {
	return &App{
		Store:     store,
		Diagnosis: diagnosis,
		Voice:     voice,
		Activity:  activity,
		Weather:   weather,
		Validator: validator.New(),
		Logger:    logger,
	}
}
