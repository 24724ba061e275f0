package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/geolocation"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/util/numberutils"
)

type WeatherController struct {
	api                *echo.Group
	useCase            weather.UseCase
	geolocationUseCase geolocation.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, geolocationUseCase geolocation.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, geolocationUseCase: geolocationUseCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.FetchByCity)
	controller.api.GET("/weather/coordinates", controller.FetchByCoords)
	controller.api.POST("/locate", controller.Locate)
}

// FetchByCity godoc
// @Summary Load weather for a city
// @Description Fetch current conditions, forecast and air quality for a city and display them
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} model.WeatherResponse "Dashboard after the fetch"
// @Failure 400 {object} model.ErrorResponse "Missing city"
// @Failure 404 {object} model.ErrorResponse "City not found"
// @Failure 429 {object} model.ErrorResponse "Provider rate limit"
// @Failure 502 {object} model.ErrorResponse "Provider failure"
// @Router /weather [get]
func (controller *WeatherController) FetchByCity(c echo.Context) error {
	outcome, err := controller.useCase.FetchByCity(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return c.JSON(errorResponse(err))
	}
	return c.JSON(http.StatusOK, model.WeatherResponse{Committed: outcome.Committed, Dashboard: dashboardView(outcome.State)})
}

// FetchByCoords godoc
// @Summary Load weather for coordinates
// @Description Fetch current conditions, forecast and air quality for a position and display them
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} model.WeatherResponse "Dashboard after the fetch"
// @Failure 400 {object} model.ErrorResponse "Invalid coordinates"
// @Failure 502 {object} model.ErrorResponse "Provider failure"
// @Router /weather/coordinates [get]
func (controller *WeatherController) FetchByCoords(c echo.Context) error {
	coords, ok := parseCoordinates(c.QueryParam("lat"), c.QueryParam("lon"))
	if !ok {
		return c.JSON(http.StatusBadRequest, badRequest("lat and lon must be valid coordinates"))
	}

	outcome, err := controller.useCase.FetchByCoords(c.Request().Context(), coords)
	if err != nil {
		return c.JSON(errorResponse(err))
	}
	return c.JSON(http.StatusOK, model.WeatherResponse{Committed: outcome.Committed, Dashboard: dashboardView(outcome.State)})
}

// Locate godoc
// @Summary Load weather for the device position
// @Description Use the position reported by the browser, or its error code, falling back to the default city
// @Tags weather
// @Accept json
// @Produce json
// @Param position body model.LocateRequestDTO true "Position or error code"
// @Success 200 {object} model.LocateResponse "Dashboard after the fetch"
// @Failure 400 {object} model.ErrorResponse "Invalid request body"
// @Failure 502 {object} model.ErrorResponse "Default city failed too"
// @Router /locate [post]
func (controller *WeatherController) Locate(c echo.Context) error {
	var dto model.LocateRequestDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, badRequest("Invalid request body"))
	}

	locator := geolocation.ReportedLocator{}
	switch {
	case dto.Error != "":
		codeErr, ok := geolocation.ParseErrorCode(dto.Error)
		if !ok {
			return c.JSON(http.StatusBadRequest, badRequest("unknown geolocation error code"))
		}
		locator.Err = codeErr
	case dto.Lat != nil && dto.Lon != nil:
		locator.Position = &entity.Coordinates{Lat: *dto.Lat, Lon: *dto.Lon}
	default:
		locator.Err = geolocation.ErrPositionUnavailable
	}

	result, err := controller.geolocationUseCase.Locate(c.Request().Context(), locator)
	if err != nil {
		return c.JSON(errorResponse(err))
	}
	return c.JSON(http.StatusOK, model.LocateResponse{
		Located:      result.Located,
		Coordinates:  result.Coordinates,
		FallbackCity: result.FallbackCity,
		Notice:       result.Notice,
		AutoAdded:    result.AutoAdded,
		Committed:    result.Outcome.Committed,
		Dashboard:    dashboardView(result.Outcome.State),
	})
}

// parseCoordinates reads a lat/lon pair from query values
func parseCoordinates(latValue, lonValue string) (entity.Coordinates, bool) {
	lat, err := numberutils.ToFloat64WithError(latValue)
	if err != nil {
		return entity.Coordinates{}, false
	}
	lon, err := numberutils.ToFloat64WithError(lonValue)
	if err != nil {
		return entity.Coordinates{}, false
	}
	coords := entity.Coordinates{Lat: lat, Lon: lon}
	return coords, coords.Valid()
}
