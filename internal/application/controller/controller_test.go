package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api/apitest"
	"weather-dashboard/internal/domain/gateway/storage"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/state"
	"weather-dashboard/internal/domain/usecase/analytics"
	"weather-dashboard/internal/domain/usecase/favorites"
	"weather-dashboard/internal/domain/usecase/geolocation"
	"weather-dashboard/internal/domain/usecase/health"
	"weather-dashboard/internal/domain/usecase/nearby"
	"weather-dashboard/internal/domain/usecase/preferences"
	"weather-dashboard/internal/domain/usecase/weather"
)

var (
	jakarta = entity.Coordinates{Lat: -6.2088, Lon: 106.8456}
	bandung = entity.Coordinates{Lat: -6.9175, Lon: 107.6191}
)

type server struct {
	echo    *echo.Echo
	gateway *apitest.FakeGateway
	kv      *storage.MemoryStore
	store   *state.Store
}

func newServer(t *testing.T) server {
	t.Helper()

	gateway := apitest.NewFakeGateway()
	gateway.AddCity("Jakarta", "ID", jakarta, 31, 40)
	gateway.AddCity("Bandung", "ID", bandung, 24, 40)
	gateway.AddAirQuality(jakarta, 3)

	kv := storage.NewMemoryStore()
	store := state.NewStore(state.Initial())
	t.Cleanup(preferences.NewAdapter(kv, 0).Attach(store))

	weatherUseCase := weather.NewWeatherUseCase(gateway, store)
	favoritesUseCase := favorites.NewFavoritesUseCase(store, weatherUseCase, 5, 0)
	preferencesUseCase := preferences.NewPreferencesUseCase(store)
	geolocationUseCase := geolocation.NewGeolocationUseCase("Jakarta", geolocation.DefaultPositionOptions(), weatherUseCase, favoritesUseCase)
	nearbyConfig := nearby.Config{BatchSize: 5, DefaultOrigin: jakarta, DefaultCountry: "ID"}
	nearbyUseCase := nearby.NewNearbyUseCase(nearbyConfig, nearby.NewStaticDiscoverer(), gateway, weatherUseCase, store)
	healthUseCase := health.NewHealthUseCase(kv, health.ProviderInfo{Name: "openweathermap", APIKeyConfigured: true})

	e := echo.New()
	api := e.Group("")
	NewHealthController(api, healthUseCase).InitHealthRoutes()
	NewWeatherController(api, weatherUseCase, geolocationUseCase).InitWeatherRoutes()
	NewDashboardController(api, store, analytics.NewAnalyticsUseCase(store)).InitDashboardRoutes()
	NewFavoritesController(api, favoritesUseCase, preferencesUseCase).InitFavoritesRoutes()
	NewPreferencesController(api, preferencesUseCase).InitPreferencesRoutes()
	NewNearbyController(api, nearbyUseCase, preferencesUseCase).InitNearbyRoutes()

	return server{echo: e, gateway: gateway, kv: kv, store: store}
}

func (s server) do(t *testing.T, method, target, body string, out any) int {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: cannot decode %q: %v", method, target, rec.Body.String(), err)
		}
	}
	return rec.Code
}

func (s server) stored(t *testing.T, key string) string {
	t.Helper()
	value, _, err := s.kv.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("get %s: %v", key, err)
	}
	return value
}

func TestFetchByCity(t *testing.T) {
	s := newServer(t)

	var response model.WeatherResponse
	if code := s.do(t, http.MethodGet, "/weather?city=Jakarta", "", &response); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !response.Committed {
		t.Error("expected the fetch to be committed")
	}
	dashboard := response.Dashboard
	if dashboard.Current == nil || dashboard.Current.City != "Jakarta" || dashboard.Current.Temperature.Current != 31 {
		t.Fatalf("unexpected current view %+v", dashboard.Current)
	}
	if len(dashboard.Forecast) != entity.DisplayWindow {
		t.Errorf("expected %d forecast items, got %d", entity.DisplayWindow, len(dashboard.Forecast))
	}
	if dashboard.AirQuality == nil || dashboard.AirQuality.Index != 3 {
		t.Errorf("expected air quality 3, got %+v", dashboard.AirQuality)
	}
}

func TestFetchErrorsMapToStatus(t *testing.T) {
	s := newServer(t)
	s.gateway.Fail("Secret", http.StatusUnauthorized)
	s.gateway.Fail("Busy", http.StatusTooManyRequests)

	cases := []struct {
		target string
		status int
		kind   entity.ErrorKind
	}{
		{"/weather?city=Atlantis", http.StatusNotFound, entity.ErrorNotFound},
		{"/weather?city=Secret", http.StatusBadGateway, entity.ErrorUnauthorized},
		{"/weather?city=Busy", http.StatusTooManyRequests, entity.ErrorRateLimited},
	}
	for _, tc := range cases {
		var body model.ErrorResponse
		if code := s.do(t, http.MethodGet, tc.target, "", &body); code != tc.status {
			t.Errorf("%s: expected %d, got %d", tc.target, tc.status, code)
		}
		if body.Kind != string(tc.kind) || body.Error == "" {
			t.Errorf("%s: unexpected body %+v", tc.target, body)
		}
	}

	var notFound model.ErrorResponse
	s.do(t, http.MethodGet, "/weather?city=Atlantis", "", &notFound)
	if notFound.Retry != "Atlantis" || !strings.Contains(notFound.Error, "Atlantis") {
		t.Errorf("expected the query in the error, got %+v", notFound)
	}

	var dashboard model.DashboardView
	s.do(t, http.MethodGet, "/dashboard", "", &dashboard)
	if dashboard.Error == nil || dashboard.Error.Retry != "Atlantis" {
		t.Errorf("expected the failure to be displayed, got %+v", dashboard.Error)
	}
}

func TestBadRequests(t *testing.T) {
	s := newServer(t)

	for _, target := range []string{"/weather", "/weather?city=%20", "/weather/coordinates?lat=abc&lon=1", "/weather/coordinates?lat=91&lon=0", "/nearby?lat=1"} {
		if code := s.do(t, http.MethodGet, target, "", nil); code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, code)
		}
	}
	if code := s.do(t, http.MethodPut, "/preferences/unit", `{"unit":"K"}`, nil); code != http.StatusBadRequest {
		t.Errorf("expected 400 for unit K, got %d", code)
	}
	if code := s.do(t, http.MethodPost, "/preferences/install-prompt/later", "", nil); code != http.StatusBadRequest {
		t.Errorf("expected 400 for action later, got %d", code)
	}
	if code := s.do(t, http.MethodPost, "/locate", `{"error":"bogus"}`, nil); code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown error code, got %d", code)
	}
	if len(s.gateway.Calls("current")) != 0 {
		t.Error("bad requests must not reach the provider")
	}
}

func TestFetchByCoordinates(t *testing.T) {
	s := newServer(t)

	var response model.WeatherResponse
	if code := s.do(t, http.MethodGet, "/weather/coordinates?lat=-6.9175&lon=107.6191", "", &response); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if response.Dashboard.Current == nil || response.Dashboard.Current.City != "Bandung" {
		t.Errorf("unexpected dashboard %+v", response.Dashboard.Current)
	}
	if response.Dashboard.AirQuality != nil {
		t.Error("missing air quality must be absent, not an error")
	}
}

func TestLocateDeniedFallsBackToDefaultCity(t *testing.T) {
	s := newServer(t)

	var response model.LocateResponse
	if code := s.do(t, http.MethodPost, "/locate", `{"error":"permission-denied"}`, &response); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if response.Located || response.FallbackCity != "Jakarta" || response.Notice == "" {
		t.Errorf("unexpected locate response %+v", response)
	}
	if calls := s.gateway.Calls("current"); len(calls) != 1 || calls[0] != "Jakarta" {
		t.Errorf("expected one Jakarta fetch, got %v", calls)
	}
}

func TestLocateAddsCityToFavorites(t *testing.T) {
	s := newServer(t)
	s.do(t, http.MethodPost, "/favorites", `{"city":"Surabaya"}`, nil)

	var response model.LocateResponse
	if code := s.do(t, http.MethodPost, "/locate", `{"lat":-6.9175,"lon":107.6191}`, &response); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !response.Located || !response.AutoAdded {
		t.Fatalf("unexpected locate response %+v", response)
	}
	favoritesView := response.Dashboard.Favorites
	if len(favoritesView) != 2 || favoritesView[0].Name != "Bandung" || favoritesView[1].Name != "Surabaya" {
		t.Errorf("expected Bandung prepended, got %+v", favoritesView)
	}
	if stored := s.stored(t, storage.KeyFavorites); !strings.Contains(stored, "Bandung") {
		t.Errorf("expected Bandung persisted, got %s", stored)
	}
}

func TestFavoritesLifecycle(t *testing.T) {
	s := newServer(t)

	var added model.FavoritesResponse
	if code := s.do(t, http.MethodPost, "/favorites", `{"city":"Jakarta"}`, &added); code != http.StatusCreated || !added.Changed {
		t.Fatalf("expected 201 and a change, got %d %+v", code, added)
	}
	var again model.FavoritesResponse
	if code := s.do(t, http.MethodPost, "/favorites", `{"city":"Jakarta"}`, &again); code != http.StatusOK || again.Changed || len(again.Favorites) != 1 {
		t.Fatalf("expected an idempotent add, got %d %+v", code, again)
	}
	s.do(t, http.MethodPost, "/favorites", `{"city":"Bandung"}`, nil)

	var reordered model.FavoritesResponse
	s.do(t, http.MethodPut, "/favorites/order", `{"cities":["Bandung","Jakarta"]}`, &reordered)
	if len(reordered.Favorites) != 2 || reordered.Favorites[0].Name != "Bandung" {
		t.Errorf("unexpected order %+v", reordered.Favorites)
	}

	var selected model.WeatherResponse
	if code := s.do(t, http.MethodPost, "/favorites/Bandung/select", "", &selected); code != http.StatusOK || selected.Dashboard.Current.City != "Bandung" {
		t.Errorf("expected Bandung displayed, got %d", code)
	}

	var refreshed favorites.RefreshReport
	s.do(t, http.MethodPost, "/favorites/refresh", "", &refreshed)
	if refreshed.Updated != 2 || len(refreshed.Failed) != 0 {
		t.Errorf("unexpected refresh report %+v", refreshed)
	}

	var removed model.FavoritesResponse
	s.do(t, http.MethodDelete, "/favorites/Jakarta", "", &removed)
	if !removed.Changed || len(removed.Favorites) != 1 || removed.Favorites[0].Name != "Bandung" {
		t.Errorf("unexpected remove result %+v", removed)
	}
	if removed.Favorites[0].Temp == nil {
		t.Error("expected the refreshed temperature on the remaining favorite")
	}

	var listed model.FavoritesResponse
	s.do(t, http.MethodGet, "/favorites", "", &listed)
	if len(listed.Favorites) != 1 {
		t.Errorf("expected one favorite, got %+v", listed.Favorites)
	}
}

func TestFavoriteNamesAreDecodedFromPath(t *testing.T) {
	s := newServer(t)
	s.do(t, http.MethodPost, "/favorites", `{"city":"St. John's"}`, nil)
	s.do(t, http.MethodPost, "/favorites", `{"city":"Ho Chi Minh"}`, nil)

	var removed model.FavoritesResponse
	if code := s.do(t, http.MethodDelete, "/favorites/St.%20John's", "", &removed); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !removed.Changed || len(removed.Favorites) != 1 || removed.Favorites[0].Name != "Ho Chi Minh" {
		t.Errorf("expected St. John's removed, got %+v", removed)
	}

	s.do(t, http.MethodDelete, "/favorites/Ho%20Chi%20Minh", "", &removed)
	if !removed.Changed || len(removed.Favorites) != 0 {
		t.Errorf("expected Ho Chi Minh removed, got %+v", removed)
	}

	var selected model.WeatherResponse
	if code := s.do(t, http.MethodPost, "/favorites/Band%75ng/select", "", &selected); code != http.StatusOK || selected.Dashboard.Current.City != "Bandung" {
		t.Errorf("expected Bandung displayed, got %d", code)
	}
}

func TestMalformedFavoriteNameIsRejected(t *testing.T) {
	s := newServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/favorites/x", nil)
	req.URL.RawPath = "/favorites/100%zz"
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUnitAppliesToViews(t *testing.T) {
	s := newServer(t)
	s.do(t, http.MethodGet, "/weather?city=Jakarta", "", nil)

	var prefs model.PreferencesResponse
	if code := s.do(t, http.MethodPut, "/preferences/unit", `{"unit":"F"}`, &prefs); code != http.StatusOK || prefs.Unit != entity.Fahrenheit {
		t.Fatalf("expected unit F, got %d %+v", code, prefs)
	}
	if stored := s.stored(t, storage.KeyUnit); stored != "F" {
		t.Errorf("expected F persisted, got %q", stored)
	}

	var dashboard model.DashboardView
	s.do(t, http.MethodGet, "/dashboard", "", &dashboard)
	if dashboard.Current.Temperature.Current != 87.8 || dashboard.Current.TempCounter != 88 {
		t.Errorf("expected 87.8F, got %+v", dashboard.Current.Temperature)
	}

	var series analytics.Analytics
	s.do(t, http.MethodGet, "/analytics", "", &series)
	if series.Unit != entity.Fahrenheit || len(series.Hourly) != 8 || series.Hourly[0].Temp != 88 {
		t.Errorf("unexpected analytics %+v", series)
	}
}

func TestAnalyticsWithoutForecast(t *testing.T) {
	s := newServer(t)
	if code := s.do(t, http.MethodGet, "/analytics", "", nil); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestThemeAndInstallPrompt(t *testing.T) {
	s := newServer(t)

	var prefs model.PreferencesResponse
	s.do(t, http.MethodGet, "/preferences", "", &prefs)
	if prefs.Theme != entity.ThemeLight || !prefs.ShowInstallPrompt {
		t.Fatalf("unexpected defaults %+v", prefs)
	}

	s.do(t, http.MethodPut, "/preferences/theme", `{"theme":"dark"}`, &prefs)
	if prefs.Theme != entity.ThemeDark || s.stored(t, storage.KeyTheme) != "dark" {
		t.Errorf("expected dark theme persisted, got %+v", prefs)
	}

	s.do(t, http.MethodPost, "/preferences/install-prompt/dismiss", "", &prefs)
	if prefs.ShowInstallPrompt || !prefs.Dismissed {
		t.Errorf("expected the prompt dismissed, got %+v", prefs)
	}
	if s.stored(t, storage.KeyInstallDismissed) != "true" {
		t.Error("expected the dismissal persisted")
	}
}

func TestNearbyDropsCitiesWithoutWeather(t *testing.T) {
	s := newServer(t)

	var response model.NearbyResponse
	if code := s.do(t, http.MethodGet, "/nearby?lat=-6.2088&lon=106.8456&country=ID", "", &response); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if response.CountryName != "Indonesia" || response.Strategy != string(nearby.StrategyStatic) || !response.Committed {
		t.Errorf("unexpected response %+v", response)
	}
	if len(response.Cities) != 2 || response.Cities[0].Name != "Jakarta" || response.Cities[1].Name != "Bandung" {
		t.Errorf("expected Jakarta and Bandung, got %+v", response.Cities)
	}
}

func TestNearbyEmptyCountry(t *testing.T) {
	s := newServer(t)

	var response model.NearbyResponse
	if code := s.do(t, http.MethodGet, "/nearby?lat=10&lon=10&country=ZZ", "", &response); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(response.Cities) != 0 || response.Message == "" {
		t.Errorf("expected an empty answer with a message, got %+v", response)
	}
}

func TestHealth(t *testing.T) {
	s := newServer(t)

	var response model.HealthResponse
	if code := s.do(t, http.MethodGet, "/health", "", &response); code != http.StatusOK || response.Status != model.StatusUp {
		t.Errorf("expected healthy, got %d %+v", code, response)
	}
}
