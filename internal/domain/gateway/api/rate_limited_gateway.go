package api

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model/external"
)

// RateLimitedWeatherGateway delays outbound calls to stay under the provider quota.
// It never retries: a call either waits for a token or fails when the context ends.
type RateLimitedWeatherGateway struct {
	gateway WeatherGateway
	limiter *rate.Limiter
}

// NewRateLimitedWeatherGateway wraps gateway with a token bucket of rps requests per second and the given burst
func NewRateLimitedWeatherGateway(gateway WeatherGateway, rps float64, burst int) *RateLimitedWeatherGateway {
	return &RateLimitedWeatherGateway{
		gateway: gateway,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

var _ WeatherGateway = (*RateLimitedWeatherGateway)(nil)

func (r *RateLimitedWeatherGateway) wait(ctx context.Context, query string) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return NewFetchError(0, "", query, fmt.Errorf("rate limit wait canceled: %w", err))
	}
	return nil
}

func (r *RateLimitedWeatherGateway) CurrentByCity(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	if err := r.wait(ctx, city); err != nil {
		return nil, err
	}
	return r.gateway.CurrentByCity(ctx, city)
}

func (r *RateLimitedWeatherGateway) CurrentByCoords(ctx context.Context, coords entity.Coordinates) (*external.CurrentWeatherResponse, error) {
	if err := r.wait(ctx, coords.String()); err != nil {
		return nil, err
	}
	return r.gateway.CurrentByCoords(ctx, coords)
}

func (r *RateLimitedWeatherGateway) ForecastByCity(ctx context.Context, city string) (*external.ForecastResponse, error) {
	if err := r.wait(ctx, city); err != nil {
		return nil, err
	}
	return r.gateway.ForecastByCity(ctx, city)
}

func (r *RateLimitedWeatherGateway) ForecastByCoords(ctx context.Context, coords entity.Coordinates) (*external.ForecastResponse, error) {
	if err := r.wait(ctx, coords.String()); err != nil {
		return nil, err
	}
	return r.gateway.ForecastByCoords(ctx, coords)
}

func (r *RateLimitedWeatherGateway) AirQualityByCoords(ctx context.Context, coords entity.Coordinates) (*external.AirPollutionResponse, error) {
	if err := r.wait(ctx, coords.String()); err != nil {
		return nil, err
	}
	return r.gateway.AirQualityByCoords(ctx, coords)
}

func (r *RateLimitedWeatherGateway) DirectGeocode(ctx context.Context, query string, limit int) ([]external.GeocodingResultDTO, error) {
	if err := r.wait(ctx, query); err != nil {
		return nil, err
	}
	return r.gateway.DirectGeocode(ctx, query, limit)
}

func (r *RateLimitedWeatherGateway) ReverseGeocode(ctx context.Context, coords entity.Coordinates, limit int) ([]external.GeocodingResultDTO, error) {
	if err := r.wait(ctx, coords.String()); err != nil {
		return nil, err
	}
	return r.gateway.ReverseGeocode(ctx, coords, limit)
}
