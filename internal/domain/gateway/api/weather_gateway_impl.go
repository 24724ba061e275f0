package api

import (
	"context"
	"strconv"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/http"
)

// GatewayConfig holds the OpenWeatherMap settings
type GatewayConfig struct {
	DataURL string
	GeoURL  string
	APIKey  string
	Lang    string
	Timeout time.Duration
}

// weatherGatewayImpl implements the WeatherGateway interface on OpenWeatherMap
type weatherGatewayImpl struct {
	dataClient *http.Client
	geoClient  *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP clients for the data and geocoding APIs
func NewWeatherGateway(config GatewayConfig) WeatherGateway {
	params := map[string]string{
		"appid": config.APIKey,
		"units": "metric",
	}
	if config.Lang != "" {
		params["lang"] = config.Lang
	}

	options := http.ClientOptions{
		DefaultQueryParams: params,
		ReadTimeout:        config.Timeout,
		ConnectionTimeout:  config.Timeout,
		Logger:             http.NewZapLogger("appid"),
	}

	return &weatherGatewayImpl{
		dataClient: http.NewHttpClient(config.DataURL, options),
		geoClient:  http.NewHttpClient(config.GeoURL, options),
	}
}

// CurrentByCity gets current conditions for a city name
func (w *weatherGatewayImpl) CurrentByCity(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	response := &external.CurrentWeatherResponse{}
	if err := w.get(ctx, w.dataClient, "/weather", map[string]string{"q": city}, response, city); err != nil {
		return nil, err
	}
	return response, nil
}

// CurrentByCoords gets current conditions for a coordinate pair
func (w *weatherGatewayImpl) CurrentByCoords(ctx context.Context, coords entity.Coordinates) (*external.CurrentWeatherResponse, error) {
	response := &external.CurrentWeatherResponse{}
	if err := w.get(ctx, w.dataClient, "/weather", coordsParams(coords), response, coords.String()); err != nil {
		return nil, err
	}
	return response, nil
}

// ForecastByCity gets the 3-hour forecast for a city name
func (w *weatherGatewayImpl) ForecastByCity(ctx context.Context, city string) (*external.ForecastResponse, error) {
	response := &external.ForecastResponse{}
	if err := w.get(ctx, w.dataClient, "/forecast", map[string]string{"q": city}, response, city); err != nil {
		return nil, err
	}
	return response, nil
}

// ForecastByCoords gets the 3-hour forecast for a coordinate pair
func (w *weatherGatewayImpl) ForecastByCoords(ctx context.Context, coords entity.Coordinates) (*external.ForecastResponse, error) {
	response := &external.ForecastResponse{}
	if err := w.get(ctx, w.dataClient, "/forecast", coordsParams(coords), response, coords.String()); err != nil {
		return nil, err
	}
	return response, nil
}

// AirQualityByCoords gets the air pollution reading for a coordinate pair
func (w *weatherGatewayImpl) AirQualityByCoords(ctx context.Context, coords entity.Coordinates) (*external.AirPollutionResponse, error) {
	response := &external.AirPollutionResponse{}
	if err := w.get(ctx, w.dataClient, "/air_pollution", coordsParams(coords), response, coords.String()); err != nil {
		return nil, err
	}
	return response, nil
}

// DirectGeocode resolves a query like "Jakarta,ID"
func (w *weatherGatewayImpl) DirectGeocode(ctx context.Context, query string, limit int) ([]external.GeocodingResultDTO, error) {
	var response []external.GeocodingResultDTO
	params := map[string]string{"q": query, "limit": strconv.Itoa(limit)}
	if err := w.get(ctx, w.geoClient, "/direct", params, &response, query); err != nil {
		return nil, err
	}
	return response, nil
}

// ReverseGeocode lists locations around a coordinate pair
func (w *weatherGatewayImpl) ReverseGeocode(ctx context.Context, coords entity.Coordinates, limit int) ([]external.GeocodingResultDTO, error) {
	var response []external.GeocodingResultDTO
	params := coordsParams(coords)
	params["limit"] = strconv.Itoa(limit)
	if err := w.get(ctx, w.geoClient, "/reverse", params, &response, coords.String()); err != nil {
		return nil, err
	}
	return response, nil
}

// get executes a GET and converts any failure into an *entity.FetchError
func (w *weatherGatewayImpl) get(ctx context.Context, client *http.Client, path string, params map[string]string, target any, query string) error {
	_, errResp, status, err := client.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(params).
		WithSuccessResp(target).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return nil
	}

	var providerMessage string
	if errResp != nil {
		providerMessage = errResp.(*external.APIErrorResponse).Message
	}
	return NewFetchError(status, providerMessage, query, err)
}

func coordsParams(coords entity.Coordinates) map[string]string {
	return map[string]string{
		"lat": strconv.FormatFloat(coords.Lat, 'f', -1, 64),
		"lon": strconv.FormatFloat(coords.Lon, 'f', -1, 64),
	}
}
