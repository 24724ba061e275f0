package controller

import (
	"errors"
	"math"
	"net/http"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/state"
	"weather-dashboard/internal/domain/usecase/analytics"
	"weather-dashboard/internal/domain/usecase/favorites"
	"weather-dashboard/internal/domain/usecase/preferences"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/msg"
)

// errorResponse maps a use case error to its HTTP status and body
func errorResponse(err error) (int, model.ErrorResponse) {
	if fetchErr, ok := entity.AsFetchError(err); ok {
		body := model.ErrorResponse{Error: fetchErr.Message, Kind: string(fetchErr.Kind), Retry: fetchErr.Query}
		switch fetchErr.Kind {
		case entity.ErrorNotFound:
			return http.StatusNotFound, body
		case entity.ErrorRateLimited:
			return http.StatusTooManyRequests, body
		default:
			return http.StatusBadGateway, body
		}
	}

	switch {
	case errors.Is(err, weather.ErrEmptyQuery):
		return http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("weather.error.invalid-query")}
	case errors.Is(err, favorites.ErrEmptyName):
		return http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("favorites.error.empty-name")}
	case errors.Is(err, preferences.ErrInvalidUnit):
		return http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("preferences.error.invalid-unit")}
	case errors.Is(err, preferences.ErrInvalidTheme):
		return http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("preferences.error.invalid-theme")}
	case errors.Is(err, preferences.ErrInvalidAction):
		return http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("preferences.error.invalid-action")}
	case errors.Is(err, analytics.ErrNoForecast):
		return http.StatusNotFound, model.ErrorResponse{Error: msg.GetMessage("weather.error.forecast")}
	}
	return http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()}
}

func badRequest(message string) model.ErrorResponse {
	return model.ErrorResponse{Error: message}
}

// dashboardView renders the state with the active unit applied
func dashboardView(s state.State) model.DashboardView {
	unit := s.Preferences.Unit
	view := model.DashboardView{
		Unit:              unit,
		Theme:             s.Preferences.Theme,
		ShowInstallPrompt: s.Preferences.InstallPrompt.ShouldShow(),
		Loading:           s.Loading,
		Forecast:          []model.ForecastItemView{},
		AirQuality:        s.AirQuality,
		Favorites:         favoriteViews(s.Favorites, unit),
		Nearby:            nearbyViews(s.Nearby, unit),
		NearbyError:       s.NearbyError,
	}

	if s.Error != nil {
		view.Error = &model.ErrorResponse{Error: s.Error.Message, Kind: string(s.Error.Kind), Retry: s.Error.Query}
	}
	if s.Snapshot != nil {
		current := currentView(*s.Snapshot, unit)
		view.Current = &current
	}
	if s.Forecast != nil {
		for _, entry := range s.Forecast.Display() {
			view.Forecast = append(view.Forecast, model.ForecastItemView{
				Timestamp:     entry.Timestamp,
				Label:         entry.Label,
				Temp:          entity.DisplayTemperature(entry.Temperature.Current, unit),
				FeelsLike:     entity.DisplayTemperature(entry.Temperature.FeelsLike, unit),
				Humidity:      entry.Humidity,
				Wind:          entry.Wind,
				Condition:     entry.Condition,
				Precipitation: int(math.Round(entry.PrecipitationProbability * 100)),
			})
		}
	}
	return view
}

func currentView(snapshot entity.WeatherSnapshot, unit entity.Unit) model.CurrentView {
	return model.CurrentView{
		City:        snapshot.City,
		Country:     snapshot.Country,
		Coordinates: snapshot.Coordinates,
		Timestamp:   snapshot.Timestamp,
		Temperature: model.TemperatureView{
			Current:   entity.DisplayTemperature(snapshot.Temperature.Current, unit),
			Min:       entity.DisplayTemperature(snapshot.Temperature.Min, unit),
			Max:       entity.DisplayTemperature(snapshot.Temperature.Max, unit),
			FeelsLike: entity.DisplayTemperature(snapshot.Temperature.FeelsLike, unit),
		},
		TempCounter: entity.CounterTemperature(snapshot.Temperature.Current, unit),
		Humidity:    snapshot.Humidity,
		Pressure:    snapshot.Pressure,
		Visibility:  snapshot.Visibility,
		Wind:        snapshot.Wind,
		Cloudiness:  snapshot.Cloudiness,
		Condition:   snapshot.Condition,
		Sunrise:     snapshot.Sunrise,
		Sunset:      snapshot.Sunset,
	}
}

func favoriteViews(favorites []entity.FavoriteCity, unit entity.Unit) []model.FavoriteView {
	views := make([]model.FavoriteView, 0, len(favorites))
	for _, favorite := range favorites {
		view := model.FavoriteView{
			Name:        favorite.Name,
			Country:     favorite.Country,
			Coordinates: favorite.Coordinates,
			LastUpdated: favorite.LastUpdated,
		}
		if favorite.Weather != nil {
			temp := entity.DisplayTemperature(favorite.Weather.Temp, unit)
			view.Temp = &temp
			view.Description = favorite.Weather.Description
			view.Icon = favorite.Weather.Icon
		}
		views = append(views, view)
	}
	return views
}

func nearbyViews(cities []entity.NearbyCity, unit entity.Unit) []model.NearbyCityView {
	views := make([]model.NearbyCityView, 0, len(cities))
	for _, city := range cities {
		view := model.NearbyCityView{
			Name:        city.Name,
			Country:     city.Country,
			State:       city.State,
			Coordinates: city.Coordinates,
		}
		if city.Weather != nil {
			temp := entity.DisplayTemperature(city.Weather.Temp, unit)
			feelsLike := entity.DisplayTemperature(city.Weather.FeelsLike, unit)
			view.Temp = &temp
			view.FeelsLike = &feelsLike
			view.Condition = city.Weather.Condition
			view.Description = city.Weather.Description
			view.Icon = city.Weather.Icon
			view.Humidity = city.Weather.Humidity
			view.WindSpeed = city.Weather.WindSpeed
			view.Pressure = city.Weather.Pressure
		}
		views = append(views, view)
	}
	return views
}

func preferencesView(preferences entity.Preferences) model.PreferencesResponse {
	return model.PreferencesResponse{
		Unit:              preferences.Unit,
		Theme:             preferences.Theme,
		ShowInstallPrompt: preferences.InstallPrompt.ShouldShow(),
		Dismissed:         preferences.InstallPrompt.Dismissed,
		Installed:         preferences.InstallPrompt.Installed,
	}
}
