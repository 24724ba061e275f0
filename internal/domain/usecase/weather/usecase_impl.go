package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/internal/domain/state"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// ErrEmptyQuery is returned when a city name is blank
var ErrEmptyQuery = errors.New("empty weather query")

type weatherUseCase struct {
	apiGateway api.WeatherGateway
	store      *state.Store
}

func NewWeatherUseCase(apiGateway api.WeatherGateway, store *state.Store) UseCase {
	return &weatherUseCase{
		apiGateway: apiGateway,
		store:      store,
	}
}

// FetchByCity loads current weather, forecast and air quality for a city into the current slot
func (uc *weatherUseCase) FetchByCity(ctx context.Context, city string) (Outcome, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Outcome{State: uc.store.State()}, ErrEmptyQuery
	}

	return uc.fetch(ctx, city,
		func(ctx context.Context) (*external.CurrentWeatherResponse, error) {
			return uc.apiGateway.CurrentByCity(ctx, city)
		},
		func(ctx context.Context) (*external.ForecastResponse, error) {
			return uc.apiGateway.ForecastByCity(ctx, city)
		})
}

// FetchByCoords loads current weather, forecast and air quality for coordinates into the current slot
func (uc *weatherUseCase) FetchByCoords(ctx context.Context, coords entity.Coordinates) (Outcome, error) {
	return uc.fetch(ctx, coords.String(),
		func(ctx context.Context) (*external.CurrentWeatherResponse, error) {
			return uc.apiGateway.CurrentByCoords(ctx, coords)
		},
		func(ctx context.Context) (*external.ForecastResponse, error) {
			return uc.apiGateway.ForecastByCoords(ctx, coords)
		})
}

// fetch runs the current and forecast calls in parallel, then the optional air quality call,
// and commits the result only if no newer fetch started meanwhile
func (uc *weatherUseCase) fetch(
	ctx context.Context,
	query string,
	currentFn func(context.Context) (*external.CurrentWeatherResponse, error),
	forecastFn func(context.Context) (*external.ForecastResponse, error),
) (Outcome, error) {
	seq := uc.store.Begin(state.SlotCurrent)
	log.Debug(msg.GetMessage("weather.fetch.start", query, state.SlotCurrent, seq))

	var current *external.CurrentWeatherResponse
	var forecast *external.ForecastResponse

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		current, err = currentFn(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		forecast, err = forecastFn(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		fetchErr := toFetchError(err, query)
		log.Warn(msg.GetMessage("weather.fetch.failed", query, fetchErr.Message), zap.String("kind", string(fetchErr.Kind)))

		settled, committed := uc.store.Dispatch(state.WeatherFailed{Seq: seq, Err: fetchErr})
		uc.logStale(query, seq, committed)
		return Outcome{Seq: seq, Committed: committed, State: settled}, fmt.Errorf("failed to fetch weather for %s: %w", query, fetchErr)
	}

	snapshot := ToSnapshot(current)
	series := ToForecast(forecast)
	airQuality := uc.airQuality(ctx, snapshot.Coordinates)

	settled, committed := uc.store.Dispatch(state.WeatherLoaded{
		Seq:        seq,
		Snapshot:   snapshot,
		Forecast:   series,
		AirQuality: airQuality,
	})
	if committed {
		log.Info(msg.GetMessage("weather.fetch.success", snapshot.City, state.SlotCurrent, seq))
	}
	uc.logStale(query, seq, committed)

	return Outcome{Seq: seq, Committed: committed, Snapshot: &snapshot, State: settled}, nil
}

// airQuality is optional: any failure yields nil
func (uc *weatherUseCase) airQuality(ctx context.Context, coords entity.Coordinates) *entity.AirQuality {
	response, err := uc.apiGateway.AirQualityByCoords(ctx, coords)
	if err != nil {
		log.Warn(msg.GetMessage("weather.fetch.air-quality-missing", coords.String(), err.Error()))
		return nil
	}
	return ToAirQuality(response)
}

func (uc *weatherUseCase) logStale(query string, seq uint64, committed bool) {
	if committed {
		return
	}
	log.Info(msg.GetMessage("weather.fetch.stale", query, seq, uc.store.State().Latest(state.SlotCurrent)))
}

// CurrentByCity returns the current conditions for a city without touching the dashboard state
func (uc *weatherUseCase) CurrentByCity(ctx context.Context, city string) (*entity.WeatherSnapshot, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyQuery
	}

	response, err := uc.apiGateway.CurrentByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current weather for %s: %w", city, err)
	}
	snapshot := ToSnapshot(response)
	return &snapshot, nil
}

// CurrentByCoords returns the current conditions for coordinates without touching the dashboard state
func (uc *weatherUseCase) CurrentByCoords(ctx context.Context, coords entity.Coordinates) (*entity.WeatherSnapshot, error) {
	response, err := uc.apiGateway.CurrentByCoords(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current weather for %s: %w", coords, err)
	}
	snapshot := ToSnapshot(response)
	return &snapshot, nil
}

func toFetchError(err error, query string) *entity.FetchError {
	if fetchErr, ok := entity.AsFetchError(err); ok {
		return fetchErr
	}
	return api.NewFetchError(0, "", query, err)
}
