package geolocation

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/usecase/favorites"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

type geolocationUseCase struct {
	defaultCity      string
	options          PositionOptions
	weatherUseCase   weather.UseCase
	favoritesUseCase favorites.UseCase
}

func NewGeolocationUseCase(defaultCity string, options PositionOptions, weatherUseCase weather.UseCase, favoritesUseCase favorites.UseCase) UseCase {
	if defaultCity == "" {
		defaultCity = "Jakarta"
	}
	return &geolocationUseCase{
		defaultCity:      defaultCity,
		options:          options,
		weatherUseCase:   weatherUseCase,
		favoritesUseCase: favoritesUseCase,
	}
}

// Locate never asks the locator twice: any failure goes to a single default city fetch
func (uc *geolocationUseCase) Locate(ctx context.Context, locator Locator) (Result, error) {
	coords, err := uc.position(ctx, locator)
	if err != nil {
		return uc.fallback(ctx, uc.notice(err))
	}
	log.Info(msg.GetMessage("geolocation.located", coords.Lat, coords.Lon))

	outcome, err := uc.weatherUseCase.FetchByCoords(ctx, coords)
	if err != nil {
		result, fallbackErr := uc.fallback(ctx, msg.GetMessage("geolocation.coordinates-failed", uc.defaultCity, err.Error()))
		result.Coordinates = &coords
		return result, fallbackErr
	}

	result := Result{Located: true, Coordinates: &coords, Outcome: outcome}
	if outcome.Snapshot != nil {
		next, added := uc.favoritesUseCase.Prepend(ctx, *outcome.Snapshot)
		if added {
			result.AutoAdded = true
			result.Outcome.State = next
		}
	}
	return result, nil
}

func (uc *geolocationUseCase) position(ctx context.Context, locator Locator) (entity.Coordinates, error) {
	if locator == nil {
		return entity.Coordinates{}, ErrUnsupported
	}

	lookupCtx := ctx
	if uc.options.Timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, uc.options.Timeout)
		defer cancel()
	}

	coords, err := locator.CurrentPosition(lookupCtx, uc.options)
	if errors.Is(err, context.DeadlineExceeded) {
		return coords, ErrTimeout
	}
	return coords, err
}

func (uc *geolocationUseCase) fallback(ctx context.Context, notice string) (Result, error) {
	log.Warn(notice, zap.String("fallback", uc.defaultCity))
	outcome, err := uc.weatherUseCase.FetchByCity(ctx, uc.defaultCity)
	return Result{FallbackCity: uc.defaultCity, Notice: notice, Outcome: outcome}, err
}

func (uc *geolocationUseCase) notice(err error) string {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return msg.GetMessage("geolocation.denied", uc.defaultCity)
	case errors.Is(err, ErrTimeout):
		return msg.GetMessage("geolocation.timeout", uc.defaultCity)
	case errors.Is(err, ErrUnsupported):
		return msg.GetMessage("geolocation.unsupported", uc.defaultCity)
	default:
		return msg.GetMessage("geolocation.unavailable", uc.defaultCity)
	}
}
