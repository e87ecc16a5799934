package planner

import "TRIPWISE_BACK-END/internal/models"

// WeatherEstimator produces a plausible weather outlook for a destination
type WeatherEstimator struct {
	random RandomSource
}

// NewWeatherEstimator creates an estimator using the given source
func NewWeatherEstimator(random RandomSource) *WeatherEstimator {
	return &WeatherEstimator{random: random}
}

// Estimate returns sunny or partly cloudy weather: 25-34°C, 0-19% rain, 50-79% humidity
func (e *WeatherEstimator) Estimate() models.Weather {
	rng := e.random.New(streamWeather)

	condition := "Partly Cloudy"
	if rng.Float64() > 0.5 {
		condition = "Sunny"
	}
	return models.Weather{
		Condition:     condition,
		Temperature:   25 + rng.IntN(10),
		Precipitation: rng.IntN(20),
		Humidity:      50 + rng.IntN(30),
	}
}
