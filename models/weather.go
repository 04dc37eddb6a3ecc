package models

// CurrentConditions is a snapshot of the weather at a location.
type CurrentConditions struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"wind_speed"`
	Visibility  int    `json:"visibility"`
}

// ForecastDay is a single day of the short-range forecast.
type ForecastDay struct {
	Date                string `json:"date"`
	High                int    `json:"high"`
	Low                 int    `json:"low"`
	Condition           string `json:"condition"`
	PrecipitationChance int    `json:"precipitation_chance"`
}

// WeatherReport is the full payload returned by the weather source:
// current conditions, a three-day forecast and advice derived from both.
type WeatherReport struct {
	Location      string            `json:"location"`
	Current       CurrentConditions `json:"current"`
	Forecast      []ForecastDay     `json:"forecast"`
	FarmingAdvice []string          `json:"farming_advice"`
}
