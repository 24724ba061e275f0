package geolocation

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api/apitest"
	"weather-dashboard/internal/domain/gateway/storage"
	"weather-dashboard/internal/domain/state"
	"weather-dashboard/internal/domain/usecase/favorites"
	"weather-dashboard/internal/domain/usecase/preferences"
	"weather-dashboard/internal/domain/usecase/weather"
)

var (
	jakarta = entity.Coordinates{Lat: -6.2146, Lon: 106.8451}
	bandung = entity.Coordinates{Lat: -6.9175, Lon: 107.6191}
)

type countingLocator struct {
	calls  int
	coords entity.Coordinates
	err    error
}

func (l *countingLocator) CurrentPosition(_ context.Context, _ PositionOptions) (entity.Coordinates, error) {
	l.calls++
	return l.coords, l.err
}

type fixture struct {
	gateway *apitest.FakeGateway
	store   *state.Store
	kv      *storage.MemoryStore
	useCase UseCase
}

func newFixture(t *testing.T, favoriteNames ...string) fixture {
	t.Helper()

	gateway := apitest.NewFakeGateway()
	gateway.AddCity("Jakarta", "ID", jakarta, 31, 8)
	gateway.AddCity("Bandung", "ID", bandung, 24, 8)

	kv := storage.NewMemoryStore()
	store := state.NewStore(state.Initial())
	for _, name := range favoriteNames {
		store.Dispatch(state.FavoriteAdded{City: entity.FavoriteCity{Name: name}})
	}
	t.Cleanup(preferences.NewAdapter(kv, 0).Attach(store))

	weatherUseCase := weather.NewWeatherUseCase(gateway, store)
	favoritesUseCase := favorites.NewFavoritesUseCase(store, weatherUseCase, 5, 0)

	return fixture{
		gateway: gateway,
		store:   store,
		kv:      kv,
		useCase: NewGeolocationUseCase("Jakarta", DefaultPositionOptions(), weatherUseCase, favoritesUseCase),
	}
}

func TestPermissionDeniedFetchesDefaultCityOnce(t *testing.T) {
	f := newFixture(t)
	locator := &countingLocator{err: ErrPermissionDenied}

	result, err := f.useCase.Locate(context.Background(), locator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if locator.calls != 1 {
		t.Errorf("expected exactly one locator call, got %d", locator.calls)
	}
	if calls := f.gateway.Calls("current"); len(calls) != 1 || calls[0] != "Jakarta" {
		t.Errorf("expected exactly one Jakarta fetch, got %v", calls)
	}
	if result.Located || result.FallbackCity != "Jakarta" || result.Notice == "" {
		t.Errorf("unexpected result %+v", result)
	}
	if len(f.store.State().Favorites) != 0 {
		t.Error("fallback must not touch favorites")
	}
}

func TestEveryLocatorErrorFallsBack(t *testing.T) {
	for _, locatorErr := range []error{ErrPositionUnavailable, ErrTimeout, ErrUnsupported} {
		f := newFixture(t)
		result, err := f.useCase.Locate(context.Background(), &countingLocator{err: locatorErr})
		if err != nil || result.FallbackCity != "Jakarta" {
			t.Errorf("%v: expected Jakarta fallback, got %+v err=%v", locatorErr, result, err)
		}
	}
}

func TestNilLocatorIsUnsupported(t *testing.T) {
	f := newFixture(t)
	result, _ := f.useCase.Locate(context.Background(), nil)
	if result.FallbackCity != "Jakarta" {
		t.Errorf("expected fallback, got %+v", result)
	}
}

func TestSlowLocatorTimesOut(t *testing.T) {
	f := newFixture(t)
	weatherUseCase := weather.NewWeatherUseCase(f.gateway, f.store)
	useCase := NewGeolocationUseCase("Jakarta", PositionOptions{Timeout: 10 * time.Millisecond}, weatherUseCase,
		favorites.NewFavoritesUseCase(f.store, weatherUseCase, 5, 0))

	slow := LocatorFunc(func(ctx context.Context, _ PositionOptions) (entity.Coordinates, error) {
		<-ctx.Done()
		return entity.Coordinates{}, ctx.Err()
	})

	result, err := useCase.Locate(context.Background(), slow)
	if err != nil || result.FallbackCity != "Jakarta" {
		t.Fatalf("expected fallback after timeout, got %+v err=%v", result, err)
	}
	if result.Notice != "Location detection timed out, using Jakarta as default" {
		t.Errorf("unexpected notice %q", result.Notice)
	}
}

func TestLocatedCityIsPrependedAndPersisted(t *testing.T) {
	f := newFixture(t, "Tokyo")

	result, err := f.useCase.Locate(context.Background(), &countingLocator{coords: bandung})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Located || !result.AutoAdded {
		t.Fatalf("expected located and auto added, got %+v", result)
	}

	if got := entity.FavoriteNames(f.store.State().Favorites); len(got) != 2 || got[0] != "Bandung" {
		t.Errorf("expected Bandung first, got %v", got)
	}
	if got := entity.FavoriteNames(result.Outcome.State.Favorites); len(got) != 2 || got[0] != "Bandung" {
		t.Errorf("expected returned state to include Bandung first, got %v", got)
	}
	persisted, found, _ := f.kv.Get(context.Background(), storage.KeyFavorites)
	if !found || !strings.HasPrefix(persisted, `[{"name":"Bandung"`) {
		t.Errorf("expected Bandung to be persisted first, got %s", persisted)
	}
	if f.store.State().Snapshot.City != "Bandung" {
		t.Error("expected Bandung weather to be displayed")
	}
}

func TestLocatedCityAlreadyFavoriteLeavesListUnchanged(t *testing.T) {
	f := newFixture(t, "Tokyo", "Bandung")

	result, err := f.useCase.Locate(context.Background(), &countingLocator{coords: bandung})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AutoAdded {
		t.Error("expected no auto add")
	}
	if got := entity.FavoriteNames(f.store.State().Favorites); got[0] != "Tokyo" || got[1] != "Bandung" {
		t.Errorf("expected unchanged favorites, got %v", got)
	}
	if _, found, _ := f.kv.Get(context.Background(), storage.KeyFavorites); found {
		t.Error("expected nothing to be persisted")
	}
}

func TestFailedCoordinatesFetchFallsBack(t *testing.T) {
	f := newFixture(t)
	f.gateway.Fail(bandung.String(), http.StatusInternalServerError)

	result, err := f.useCase.Locate(context.Background(), &countingLocator{coords: bandung})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Located || result.FallbackCity != "Jakarta" || result.Coordinates == nil {
		t.Errorf("unexpected result %+v", result)
	}
	if f.store.State().Snapshot.City != "Jakarta" {
		t.Error("expected Jakarta to be displayed")
	}
}

func TestParseErrorCode(t *testing.T) {
	if err, ok := ParseErrorCode("permission-denied"); !ok || err != ErrPermissionDenied {
		t.Errorf("unexpected mapping %v", err)
	}
	if _, ok := ParseErrorCode("blocked"); ok {
		t.Error("expected unknown code to be rejected")
	}
}

func TestConfiguredLocator(t *testing.T) {
	ctx := context.Background()
	if _, err := (ConfiguredLocator{}).CurrentPosition(ctx, DefaultPositionOptions()); err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	invalid := entity.Coordinates{Lat: 120}
	if _, err := (ConfiguredLocator{Position: &invalid}).CurrentPosition(ctx, DefaultPositionOptions()); err != ErrPositionUnavailable {
		t.Errorf("expected ErrPositionUnavailable, got %v", err)
	}
	coords, err := (ConfiguredLocator{Position: &bandung}).CurrentPosition(ctx, DefaultPositionOptions())
	if err != nil || coords != bandung {
		t.Errorf("expected configured position, got %v err=%v", coords, err)
	}
}
