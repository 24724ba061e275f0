// Package apitest provides an in-memory WeatherGateway for use-case tests.
package apitest

import (
	"context"
	"net/http"
	"sync"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/model/external"
)

// FakeGateway answers from registered cities. Unknown cities fail with a 404 FetchError.
type FakeGateway struct {
	mu sync.Mutex

	cities     map[string]external.CurrentWeatherResponse
	forecasts  map[string]external.ForecastResponse
	airQuality map[string]external.AirPollutionResponse
	reverse    map[entity.Coordinates][]external.GeocodingResultDTO
	failures   map[string]int

	// Hook runs before every call with the call name and query; tests use it to block or reorder calls.
	Hook func(call, query string)

	calls map[string][]string
}

var _ api.WeatherGateway = (*FakeGateway)(nil)

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{
		cities:     make(map[string]external.CurrentWeatherResponse),
		forecasts:  make(map[string]external.ForecastResponse),
		airQuality: make(map[string]external.AirPollutionResponse),
		reverse:    make(map[entity.Coordinates][]external.GeocodingResultDTO),
		failures:   make(map[string]int),
		calls:      make(map[string][]string),
	}
}

// AddCity registers current weather and a forecast of entries steps for city at coords
func (f *FakeGateway) AddCity(city, country string, coords entity.Coordinates, temp float64, entries int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current := external.CurrentWeatherResponse{
		Coord:   external.CoordDTO{Lat: coords.Lat, Lon: coords.Lon},
		Weather: []external.ConditionDTO{{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"}},
		Main:    external.MainDTO{Temp: temp, FeelsLike: temp + 1, TempMin: temp - 2, TempMax: temp + 2, Pressure: 1012, Humidity: 60},
		Wind:    external.WindDTO{Speed: 3.5, Deg: 90},
		Dt:      1700000000,
		Sys:     external.SysDTO{Country: country, Sunrise: 1699990000, Sunset: 1700030000},
		Name:    city,
	}

	forecast := external.ForecastResponse{
		Cnt:  entries,
		City: external.ForecastCityDTO{Name: city, Country: country, Coord: current.Coord},
	}
	for i := 0; i < entries; i++ {
		forecast.List = append(forecast.List, external.ForecastItemDTO{
			Dt:      1700000000 + int64(i)*10800,
			Main:    external.MainDTO{Temp: temp + float64(i), FeelsLike: temp + float64(i) - 1, TempMin: temp - 1, TempMax: temp + float64(i) + 1, Pressure: 1010, Humidity: 50 + i},
			Weather: current.Weather,
			Pop:     0.25,
		})
	}

	f.cities[city] = current
	f.cities[coords.String()] = current
	f.forecasts[city] = forecast
	f.forecasts[coords.String()] = forecast
}

// AddAirQuality registers an air pollution reading at coords
func (f *FakeGateway) AddAirQuality(coords entity.Coordinates, aqi int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	item := external.AirPollutionItemDTO{Components: map[string]float64{"pm2_5": 12.5, "pm10": 20}, Dt: 1700000000}
	item.Main.AQI = aqi
	f.airQuality[coords.String()] = external.AirPollutionResponse{List: []external.AirPollutionItemDTO{item}}
}

// AddReverse registers the reverse geocoding answer at coords
func (f *FakeGateway) AddReverse(coords entity.Coordinates, results ...external.GeocodingResultDTO) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reverse[coords] = results
}

// Fail makes every call with query fail with the given HTTP status
func (f *FakeGateway) Fail(query string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[query] = status
}

// Calls returns the queries received by call, in order
func (f *FakeGateway) Calls(call string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls[call]...)
}

func (f *FakeGateway) record(call, query string) error {
	if f.Hook != nil {
		f.Hook(call, query)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[call] = append(f.calls[call], query)
	if status, ok := f.failures[query]; ok {
		return api.NewFetchError(status, "", query, nil)
	}
	return nil
}

func (f *FakeGateway) lookupCurrent(query string) (*external.CurrentWeatherResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.cities[query]
	if !ok {
		return nil, api.NewFetchError(http.StatusNotFound, "city not found", query, nil)
	}
	return &current, nil
}

func (f *FakeGateway) lookupForecast(query string) (*external.ForecastResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	forecast, ok := f.forecasts[query]
	if !ok {
		return nil, api.NewFetchError(http.StatusNotFound, "city not found", query, nil)
	}
	return &forecast, nil
}

func (f *FakeGateway) CurrentByCity(_ context.Context, city string) (*external.CurrentWeatherResponse, error) {
	if err := f.record("current", city); err != nil {
		return nil, err
	}
	return f.lookupCurrent(city)
}

func (f *FakeGateway) CurrentByCoords(_ context.Context, coords entity.Coordinates) (*external.CurrentWeatherResponse, error) {
	if err := f.record("current", coords.String()); err != nil {
		return nil, err
	}
	return f.lookupCurrent(coords.String())
}

func (f *FakeGateway) ForecastByCity(_ context.Context, city string) (*external.ForecastResponse, error) {
	if err := f.record("forecast", city); err != nil {
		return nil, err
	}
	return f.lookupForecast(city)
}

func (f *FakeGateway) ForecastByCoords(_ context.Context, coords entity.Coordinates) (*external.ForecastResponse, error) {
	if err := f.record("forecast", coords.String()); err != nil {
		return nil, err
	}
	return f.lookupForecast(coords.String())
}

func (f *FakeGateway) AirQualityByCoords(_ context.Context, coords entity.Coordinates) (*external.AirPollutionResponse, error) {
	if err := f.record("air", coords.String()); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	reading, ok := f.airQuality[coords.String()]
	if !ok {
		return nil, api.NewFetchError(http.StatusInternalServerError, "", coords.String(), nil)
	}
	return &reading, nil
}

func (f *FakeGateway) DirectGeocode(_ context.Context, query string, limit int) ([]external.GeocodingResultDTO, error) {
	if err := f.record("direct", query); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.cities[query]
	if !ok {
		return []external.GeocodingResultDTO{}, nil
	}
	return []external.GeocodingResultDTO{{Name: current.Name, Lat: current.Coord.Lat, Lon: current.Coord.Lon, Country: current.Sys.Country}}, nil
}

func (f *FakeGateway) ReverseGeocode(_ context.Context, coords entity.Coordinates, limit int) ([]external.GeocodingResultDTO, error) {
	if err := f.record("reverse", coords.String()); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	results := f.reverse[coords]
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
