package nearby

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/state"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/util/batchutils"
)

// Config holds the lookup settings
type Config struct {
	BatchSize      int
	BatchDelay     time.Duration
	DefaultOrigin  entity.Coordinates
	DefaultCountry string
}

type nearbyUseCase struct {
	config         Config
	discoverer     Discoverer
	apiGateway     api.WeatherGateway
	weatherUseCase weather.UseCase
	store          *state.Store
}

func NewNearbyUseCase(config Config, discoverer Discoverer, apiGateway api.WeatherGateway, weatherUseCase weather.UseCase, store *state.Store) UseCase {
	if config.BatchSize <= 0 {
		config.BatchSize = 5
	}
	return &nearbyUseCase{
		config:         config,
		discoverer:     discoverer,
		apiGateway:     apiGateway,
		weatherUseCase: weatherUseCase,
		store:          store,
	}
}

func (uc *nearbyUseCase) Load(ctx context.Context, origin *entity.Coordinates, country string) (Result, error) {
	center, country := uc.resolveOrigin(origin, country)
	if country == "" {
		country = uc.reverseCountry(ctx, center)
	}

	seq := uc.store.Begin(state.SlotNearby)
	uc.store.Dispatch(state.NearbyStarted{Seq: seq, Origin: center, Country: country})

	result := Result{
		Origin:      center,
		Country:     country,
		CountryName: CountryName(country),
		Strategy:    uc.discoverer.Strategy(),
		Cities:      []entity.NearbyCity{},
	}

	if country == "" {
		result.Message = msg.GetMessage("nearby.none-found")
		_, result.Committed = uc.store.Dispatch(state.NearbyLoaded{Seq: seq, Country: country, Cities: result.Cities})
		return result, nil
	}

	discovered, err := uc.discoverer.Discover(ctx, center, country)
	if err != nil {
		result.Message = msg.GetMessage("nearby.error.failed")
		_, result.Committed = uc.store.Dispatch(state.NearbyFailed{Seq: seq, Message: result.Message})
		return result, fmt.Errorf("failed to discover cities near %s: %w", center, err)
	}

	result.Cities = uc.withWeather(ctx, discovered)
	if len(result.Cities) == 0 {
		result.Message = msg.GetMessage("nearby.none-found")
	}

	_, result.Committed = uc.store.Dispatch(state.NearbyLoaded{Seq: seq, Country: country, Cities: result.Cities})
	if result.Committed {
		log.Info(msg.GetMessage("nearby.loaded", len(result.Cities), result.CountryName, result.Strategy))
	}
	return result, nil
}

// resolveOrigin prefers the request, then the displayed snapshot, then the configured default
func (uc *nearbyUseCase) resolveOrigin(origin *entity.Coordinates, country string) (entity.Coordinates, string) {
	country = strings.ToUpper(strings.TrimSpace(country))
	if origin != nil {
		return *origin, country
	}

	if snapshot := uc.store.State().Snapshot; snapshot != nil {
		if country == "" {
			country = snapshot.Country
		}
		return snapshot.Coordinates, country
	}

	if country == "" {
		country = uc.config.DefaultCountry
	}
	return uc.config.DefaultOrigin, country
}

func (uc *nearbyUseCase) reverseCountry(ctx context.Context, origin entity.Coordinates) string {
	results, err := uc.apiGateway.ReverseGeocode(ctx, origin, 1)
	if err != nil {
		log.Warn(msg.GetMessage("nearby.reverse-failed", origin.Lat, origin.Lon, err.Error()))
		return ""
	}
	if len(results) == 0 {
		return ""
	}
	return results[0].Country
}

// withWeather looks up each city in batches. Failed lookups are dropped, the discovery order is kept.
func (uc *nearbyUseCase) withWeather(ctx context.Context, cities []entity.NearbyCity) []entity.NearbyCity {
	found := make([]*entity.NearbyCity, len(cities))
	indexes := make([]int, len(cities))
	for i := range cities {
		indexes[i] = i
	}

	var mu sync.Mutex
	batchutils.ForEach(ctx, indexes, uc.config.BatchSize, uc.config.BatchDelay, func(ctx context.Context, i int) {
		city := cities[i]
		snapshot, err := uc.weatherUseCase.CurrentByCoords(ctx, city.Coordinates)
		if err != nil {
			log.Debug(msg.GetMessage("nearby.lookup-failed", city.Name, err.Error()))
			return
		}

		summary := entity.SummaryOf(*snapshot)
		city.Weather = &summary

		mu.Lock()
		found[i] = &city
		mu.Unlock()
	})

	result := make([]entity.NearbyCity, 0, len(cities))
	for _, city := range found {
		if city != nil {
			result = append(result, *city)
		}
	}
	return result
}
