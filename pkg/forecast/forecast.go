// Package forecast supplies weather reports for farm locations. The
// only implementation generates synthetic data; it stands in for a real
// provider such as OpenWeatherMap behind the same interface.
package forecast

import (
	"context"
	"math/rand"

	"agrimind/models"
)

// Source produces a weather report for a location.
type Source interface {
	Report(ctx context.Context, location string) (*models.WeatherReport, error)
}

var conditions = []string{"sunny", "cloudy", "rainy", "partly-cloudy"}

type mockSource struct {
	rng *rand.Rand
}

// NewMock returns a Source that fabricates plausible tropical weather.
func NewMock(seed int64) Source {
	return &mockSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *mockSource) Report(_ context.Context, location string) (*models.WeatherReport, error) {
	report := &models.WeatherReport{
		Location: location,
		Current: models.CurrentConditions{
			Temperature: s.rng.Intn(15) + 20, // 20-35°C
			Condition:   conditions[s.rng.Intn(len(conditions))],
			Humidity:    s.rng.Intn(30) + 50, // 50-80%
			WindSpeed:   s.rng.Intn(20) + 5,  // 5-25 km/h
			Visibility:  s.rng.Intn(5) + 5,   // 5-10 km
		},
		Forecast: s.forecast(),
	}
	report.FarmingAdvice = BuildAdvice(report)
	return report, nil
}

func (s *mockSource) forecast() []models.ForecastDay {
	days := []string{"Today", "Tomorrow", "Day after tomorrow"}
	out := make([]models.ForecastDay, 0, len(days))
	for _, day := range days {
		out = append(out, models.ForecastDay{
			Date:                day,
			High:                s.rng.Intn(10) + 25, // 25-35°C
			Low:                 s.rng.Intn(8) + 15,  // 15-23°C
			Condition:           conditions[s.rng.Intn(len(conditions))],
			PrecipitationChance: s.rng.Intn(100),
		})
	}
	return out
}

// BuildAdvice derives farming advice from a report. At most four entries
// are returned, and the list is never empty.
func BuildAdvice(report *models.WeatherReport) []string {
	advice := []string{}
	current := report.Current

	if current.Temperature > 30 {
		advice = append(advice, "High temperatures expected - increase watering frequency and provide shade for sensitive crops")
	} else if current.Temperature < 20 {
		advice = append(advice, "Cool weather - protect tender plants and delay planting of warm-season crops")
	}

	if current.Humidity > 70 {
		advice = append(advice, "High humidity may promote fungal diseases - ensure good air circulation around plants")
	} else if current.Humidity < 50 {
		advice = append(advice, "Low humidity - increase watering and consider mulching to retain soil moisture")
	}

	rainExpected := false
	for _, day := range report.Forecast {
		if day.PrecipitationChance > 60 {
			rainExpected = true
			break
		}
	}
	if rainExpected {
		advice = append(advice,
			"Rain expected - delay fertilizer application and ensure good drainage",
			"Harvest any mature crops before heavy rains arrive")
	} else {
		advice = append(advice, "Dry period ahead - check irrigation systems and water deeply but less frequently")
	}

	if current.WindSpeed > 20 {
		advice = append(advice, "Strong winds expected - stake tall plants and protect young seedlings")
	}

	switch current.Condition {
	case "sunny":
		advice = append(advice, "Perfect conditions for most farming activities - good day for planting and harvesting")
	case "cloudy":
		advice = append(advice, "Overcast conditions reduce water evaporation - adjust watering schedule accordingly")
	case "rainy":
		advice = append(advice, "Avoid soil cultivation during rain - wait for soil to dry to prevent compaction")
	case "partly-cloudy":
		advice = append(advice, "Mixed conditions - monitor plants closely and water as needed")
	}

	if len(advice) == 0 {
		advice = append(advice,
			"Monitor your crops regularly and adjust care based on their specific needs",
			"Check soil moisture levels before watering")
	}

	if len(advice) > 4 {
		advice = advice[:4]
	}
	return advice
}
