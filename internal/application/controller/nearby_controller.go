package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/nearby"
	"weather-dashboard/internal/domain/usecase/preferences"
)

type NearbyController struct {
	api                *echo.Group
	useCase            nearby.UseCase
	preferencesUseCase preferences.UseCase
}

func NewNearbyController(api *echo.Group, useCase nearby.UseCase, preferencesUseCase preferences.UseCase) *NearbyController {
	return &NearbyController{api: api, useCase: useCase, preferencesUseCase: preferencesUseCase}
}

// InitNearbyRoutes initializes nearby cities routes
func (controller *NearbyController) InitNearbyRoutes() {
	controller.api.GET("/nearby", controller.Load)
}

// Load godoc
// @Summary Major cities around a position
// @Description Discover up to 10 cities of the same country and fetch their current weather.
// @Description Without lat/lon the displayed city is used.
// @Tags nearby
// @Produce json
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Param country query string false "ISO country code"
// @Success 200 {object} model.NearbyResponse "Cities for the map"
// @Failure 400 {object} model.ErrorResponse "Invalid coordinates"
// @Failure 500 {object} model.ErrorResponse "Discovery failed"
// @Router /nearby [get]
func (controller *NearbyController) Load(c echo.Context) error {
	var origin *entity.Coordinates
	if c.QueryParam("lat") != "" || c.QueryParam("lon") != "" {
		coords, ok := parseCoordinates(c.QueryParam("lat"), c.QueryParam("lon"))
		if !ok {
			return c.JSON(http.StatusBadRequest, badRequest("lat and lon must be valid coordinates"))
		}
		origin = &coords
	}

	result, err := controller.useCase.Load(c.Request().Context(), origin, c.QueryParam("country"))
	if err != nil {
		status, body := errorResponse(err)
		if status == http.StatusInternalServerError {
			body.Error = result.Message
		}
		return c.JSON(status, body)
	}

	unit := controller.preferencesUseCase.Get().Unit
	return c.JSON(http.StatusOK, model.NearbyResponse{
		Origin:      result.Origin,
		Country:     result.Country,
		CountryName: result.CountryName,
		Strategy:    string(result.Strategy),
		Unit:        unit,
		Cities:      nearbyViews(result.Cities, unit),
		Message:     result.Message,
		Committed:   result.Committed,
	})
}
