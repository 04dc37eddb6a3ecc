package services

import (
	"context"
	"time"

	"agrimind/models"
	"agrimind/pkg/forecast"
)

// WeatherService serves weather reports through the cache: a valid
// cached entry is returned as-is, otherwise fresh data is fetched and
// inserted with a new expiry.
//
// The check and the insert are two separate store calls, so two
// concurrent misses for the same location can both fetch and both
// insert. The duplicate row is harmless: lookups return the first match
// in insertion order, and the extra entry simply ages out.
type WeatherService struct {
	store  WeatherStore
	source forecast.Source
	ttl    time.Duration
}

func NewWeatherService(store WeatherStore, source forecast.Source, ttl time.Duration) *WeatherService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &WeatherService{store: store, source: source, ttl: ttl}
}

// Get returns the weather report for a location, from cache when a
// valid entry exists.
func (ws *WeatherService) Get(ctx context.Context, location string) (*models.WeatherReport, error) {
	cached, err := ws.store.GetValidWeatherData(location)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return &cached.WeatherInfo, nil
	}

	report, err := ws.source.Report(ctx, location)
	if err != nil {
		return nil, err
	}

	_, err = ws.store.CreateWeatherData(models.NewWeatherData{
		Location:      location,
		WeatherInfo:   *report,
		FarmingAdvice: report.FarmingAdvice,
		ExpiresAt:     time.Now().Add(ws.ttl),
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}
