package setup

import (
	"log/slog"
	"time"

	"agrimind/app"
	"agrimind/config"
	"agrimind/pkg/assistant"
	"agrimind/pkg/forecast"
	"agrimind/services"
	"agrimind/storage"
)

// InitApp initializes the application with all dependencies
func InitApp(logger *slog.Logger) (*app.App, error) {
	cfg := config.AppConfig

	store := storage.NewMemStore()
	logger.Info("in-memory store initialized")

	// Seed the demo account every request operates under
	demoUser, err := store.Bootstrap(cfg.DemoUsername, cfg.DemoPassword, cfg.DemoLocation)
	if err != nil {
		return nil, err
	}
	logger.Info("demo user bootstrapped", "username", demoUser.Username, "user_id", demoUser.ID)

	// Use the real assistant when a key is configured, rule-based
	// answers otherwise
	var ai assistant.Client
	if cfg.OpenAIAPIKey != "" {
		openAI, err := assistant.NewOpenAI(assistant.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		})
		if err != nil {
			return nil, err
		}
		ai = openAI
		logger.Info("assistant configured", "provider", "openai", "model", cfg.OpenAIModel)
	} else {
		ai = assistant.NewMock()
		logger.Info("assistant configured", "provider", "mock")
	}

	source := forecast.NewMock(time.Now().UnixNano())

	application := app.New(
		store,
		services.NewDiagnosisService(store, ai),
		services.NewVoiceService(store, ai),
		services.NewActivityService(store),
		services.NewWeatherService(store, source, cfg.WeatherCacheTTL),
		logger,
	)
	application.DemoUserID = demoUser.ID
	logger.Info("application initialized with dependency injection")

	return application, nil
}
