package nearby

import (
	"context"
	"net/http"
	"testing"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api/apitest"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/internal/domain/state"
	"weather-dashboard/internal/domain/usecase/weather"
)

type fixedDiscoverer struct {
	cities []entity.NearbyCity
}

func (d fixedDiscoverer) Discover(context.Context, entity.Coordinates, string) ([]entity.NearbyCity, error) {
	return d.cities, nil
}

func (d fixedDiscoverer) Strategy() Strategy {
	return "fixed"
}

func newNearby(gateway *apitest.FakeGateway, discoverer Discoverer, delay time.Duration) (*state.Store, UseCase) {
	store := state.NewStore(state.Initial())
	config := Config{BatchSize: 5, BatchDelay: delay, DefaultOrigin: origin, DefaultCountry: "ID"}
	return store, NewNearbyUseCase(config, discoverer, gateway, weather.NewWeatherUseCase(gateway, store), store)
}

func TestLoadDropsFailedLookupsAndKeepsOrder(t *testing.T) {
	gateway := apitest.NewFakeGateway()
	var cities []entity.NearbyCity
	for i, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		coords := entity.Coordinates{Lat: float64(i), Lon: float64(i)}
		cities = append(cities, entity.NearbyCity{Name: name, Country: "ID", Coordinates: coords})
		gateway.AddCity(name, "ID", coords, float64(20+i), 0)
	}
	gateway.Fail(cities[2].Coordinates.String(), http.StatusInternalServerError)

	store, useCase := newNearby(gateway, fixedDiscoverer{cities: cities}, 100*time.Millisecond)

	start := time.Now()
	result, err := useCase.Load(context.Background(), &origin, "ID")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("expected a pause between the two batches, took %v", elapsed)
	}

	names := make([]string, len(result.Cities))
	for i, city := range result.Cities {
		names[i] = city.Name
		if city.Weather == nil {
			t.Errorf("expected weather for %s", city.Name)
		}
	}
	if len(names) != 6 || names[0] != "A" || names[2] != "D" || names[5] != "G" {
		t.Errorf("unexpected cities %v", names)
	}
	if !result.Committed || result.CountryName != "Indonesia" {
		t.Errorf("unexpected result %+v", result)
	}
	if current := store.State(); len(current.Nearby) != 6 || current.NearbyLoading {
		t.Errorf("unexpected nearby state %+v", current.Nearby)
	}
}

func TestLoadWithNoCitiesIsNotAnError(t *testing.T) {
	gateway := apitest.NewFakeGateway()
	_, useCase := newNearby(gateway, NewGridDiscoverer(gateway), 0)

	result, err := useCase.Load(context.Background(), &origin, "ID")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Cities) != 0 || result.Message != "No major cities found in this region" {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestLoadResolvesMissingCountry(t *testing.T) {
	gateway := apitest.NewFakeGateway()
	gateway.AddReverse(origin, external.GeocodingResultDTO{Name: "Jakarta", Country: "ID", Lat: -6.2, Lon: 106.8})
	_, useCase := newNearby(gateway, NewStaticDiscoverer(), 0)

	result, err := useCase.Load(context.Background(), &origin, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Country != "ID" || result.Strategy != StrategyStatic {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestLoadWithoutOriginUsesDisplayedSnapshot(t *testing.T) {
	gateway := apitest.NewFakeGateway()
	store, useCase := newNearby(gateway, NewStaticDiscoverer(), 0)
	lima := entity.Coordinates{Lat: -12.05, Lon: -77.04}
	seq := store.Begin(state.SlotCurrent)
	store.Dispatch(state.WeatherLoaded{Seq: seq, Snapshot: entity.WeatherSnapshot{City: "Lima", Country: "PE", Coordinates: lima}})

	result, _ := useCase.Load(context.Background(), nil, "")
	if result.Origin != lima || result.Country != "PE" {
		t.Errorf("expected Lima origin, got %+v", result)
	}
}

func TestLoadWithoutAnythingUsesDefaultOrigin(t *testing.T) {
	gateway := apitest.NewFakeGateway()
	_, useCase := newNearby(gateway, NewStaticDiscoverer(), 0)

	result, _ := useCase.Load(context.Background(), nil, "")
	if result.Origin != origin || result.Country != "ID" {
		t.Errorf("expected default origin, got %+v", result)
	}
}
