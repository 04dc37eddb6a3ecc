package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	OpenAIAPIKey    string
	OpenAIModel     string
	WeatherCacheTTL time.Duration
	MaxUploadBytes  int
	DemoUsername    string
	DemoPassword    string
	DemoLocation    string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:            GetEnv("PORT", "3000"),
		Env:             GetEnv("ENV", "development"),
		OpenAIAPIKey:    GetEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     GetEnv("OPENAI_MODEL", "gpt-5"),
		WeatherCacheTTL: GetEnvDuration("WEATHER_CACHE_TTL", time.Hour),
		MaxUploadBytes:  GetEnvInt("MAX_UPLOAD_BYTES", 10*1024*1024),
		DemoUsername:    GetEnv("DEMO_USERNAME", "demo_farmer"),
		DemoPassword:    GetEnv("DEMO_PASSWORD", "demo123"),
		DemoLocation:    GetEnv("DEMO_LOCATION", "Nairobi, Kenya"),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
