package forecast

import (
	"context"
	"testing"

	"agrimind/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockReport(t *testing.T) {
	source := NewMock(42)

	report, err := source.Report(context.Background(), "Nairobi, Kenya")
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, "Nairobi, Kenya", report.Location)
	assert.GreaterOrEqual(t, report.Current.Temperature, 20)
	assert.LessOrEqual(t, report.Current.Temperature, 35)
	assert.Contains(t, conditions, report.Current.Condition)
	require.Len(t, report.Forecast, 3)
	assert.Equal(t, "Today", report.Forecast[0].Date)
	assert.NotEmpty(t, report.FarmingAdvice)
	assert.LessOrEqual(t, len(report.FarmingAdvice), 4)
}

func TestBuildAdvice(t *testing.T) {
	tests := []struct {
		name     string
		report   *models.WeatherReport
		expected string
	}{
		{
			name: "hot weather triggers watering advice",
			report: &models.WeatherReport{
				Current: models.CurrentConditions{Temperature: 33, Humidity: 60, Condition: "sunny"},
			},
			expected: "High temperatures expected - increase watering frequency and provide shade for sensitive crops",
		},
		{
			name: "cool weather warns against warm-season planting",
			report: &models.WeatherReport{
				Current: models.CurrentConditions{Temperature: 18, Humidity: 60, Condition: "cloudy"},
			},
			expected: "Cool weather - protect tender plants and delay planting of warm-season crops",
		},
		{
			name: "humid air warns about fungus",
			report: &models.WeatherReport{
				Current: models.CurrentConditions{Temperature: 25, Humidity: 80, Condition: "cloudy"},
			},
			expected: "High humidity may promote fungal diseases - ensure good air circulation around plants",
		},
		{
			name: "rainy forecast delays fertilizer",
			report: &models.WeatherReport{
				Current: models.CurrentConditions{Temperature: 25, Humidity: 60, Condition: "rainy"},
				Forecast: []models.ForecastDay{
					{Date: "Today", PrecipitationChance: 80},
				},
			},
			expected: "Rain expected - delay fertilizer application and ensure good drainage",
		},
		{
			name: "strong wind suggests staking",
			report: &models.WeatherReport{
				Current: models.CurrentConditions{Temperature: 25, Humidity: 60, WindSpeed: 24, Condition: "sunny"},
			},
			expected: "Strong winds expected - stake tall plants and protect young seedlings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := BuildAdvice(tt.report)
			assert.Contains(t, advice, tt.expected)
			assert.LessOrEqual(t, len(advice), 4)
		})
	}
}

func TestBuildAdvice_NeverEmpty(t *testing.T) {
	advice := BuildAdvice(&models.WeatherReport{
		Current: models.CurrentConditions{Temperature: 25, Humidity: 60, Condition: "unknown"},
	})
	assert.NotEmpty(t, advice)
}
