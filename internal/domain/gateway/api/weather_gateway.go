package api

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model/external"
)

// WeatherGateway defines the interface for weather provider calls.
// Failed calls return an *entity.FetchError.
type WeatherGateway interface {
	// CurrentByCity gets current conditions for a free-text city name
	CurrentByCity(ctx context.Context, city string) (*external.CurrentWeatherResponse, error)

	// CurrentByCoords gets current conditions for a coordinate pair
	CurrentByCoords(ctx context.Context, coords entity.Coordinates) (*external.CurrentWeatherResponse, error)

	// ForecastByCity gets the 3-hour forecast for a free-text city name
	ForecastByCity(ctx context.Context, city string) (*external.ForecastResponse, error)

	// ForecastByCoords gets the 3-hour forecast for a coordinate pair
	ForecastByCoords(ctx context.Context, coords entity.Coordinates) (*external.ForecastResponse, error)

	// AirQualityByCoords gets the current air pollution reading
	AirQualityByCoords(ctx context.Context, coords entity.Coordinates) (*external.AirPollutionResponse, error)

	// DirectGeocode resolves a "city[,country]" query to locations
	DirectGeocode(ctx context.Context, query string, limit int) ([]external.GeocodingResultDTO, error)

	// ReverseGeocode lists named locations around a coordinate pair
	ReverseGeocode(ctx context.Context, coords entity.Coordinates, limit int) ([]external.GeocodingResultDTO, error)
}
