package controller

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/favorites"
	"weather-dashboard/internal/domain/usecase/preferences"
)

type FavoritesController struct {
	api                *echo.Group
	useCase            favorites.UseCase
	preferencesUseCase preferences.UseCase
}

func NewFavoritesController(api *echo.Group, useCase favorites.UseCase, preferencesUseCase preferences.UseCase) *FavoritesController {
	return &FavoritesController{api: api, useCase: useCase, preferencesUseCase: preferencesUseCase}
}

// InitFavoritesRoutes initializes favorites routes
func (controller *FavoritesController) InitFavoritesRoutes() {
	controller.api.GET("/favorites", controller.List)
	controller.api.POST("/favorites", controller.Add)
	controller.api.PUT("/favorites/order", controller.Reorder)
	controller.api.POST("/favorites/refresh", controller.Refresh)
	controller.api.POST("/favorites/:city/select", controller.Select)
	controller.api.DELETE("/favorites/:city", controller.Remove)
}

// List godoc
// @Summary List favorites
// @Description Favorites in display order with their last known weather
// @Tags favorites
// @Produce json
// @Success 200 {object} model.FavoritesResponse "Favorites"
// @Router /favorites [get]
func (controller *FavoritesController) List(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.response(controller.useCase.List(), false))
}

// Add godoc
// @Summary Add a favorite
// @Description Append a city to the favorites unless it is already there
// @Tags favorites
// @Accept json
// @Produce json
// @Param favorite body model.AddFavoriteDTO true "City to add"
// @Success 201 {object} model.FavoritesResponse "City added"
// @Success 200 {object} model.FavoritesResponse "City was already a favorite"
// @Failure 400 {object} model.ErrorResponse "Invalid request body"
// @Router /favorites [post]
func (controller *FavoritesController) Add(c echo.Context) error {
	var dto model.AddFavoriteDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, badRequest("Invalid request body"))
	}

	list, changed, err := controller.useCase.Add(c.Request().Context(), dto.City)
	if err != nil {
		return c.JSON(errorResponse(err))
	}
	status := http.StatusOK
	if changed {
		status = http.StatusCreated
	}
	return c.JSON(status, controller.response(list, changed))
}

// Remove godoc
// @Summary Remove a favorite
// @Description Remove every favorite with the given name
// @Tags favorites
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} model.FavoritesResponse "Remaining favorites"
// @Failure 400 {object} model.ErrorResponse "Invalid city name"
// @Router /favorites/{city} [delete]
func (controller *FavoritesController) Remove(c echo.Context) error {
	city, err := cityParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, badRequest("Invalid city name"))
	}

	list, changed := controller.useCase.Remove(c.Request().Context(), city)
	return c.JSON(http.StatusOK, controller.response(list, changed))
}

// Reorder godoc
// @Summary Reorder favorites
// @Description Replace the favorites with the given order
// @Tags favorites
// @Accept json
// @Produce json
// @Param order body model.ReorderFavoritesDTO true "City names in the new order"
// @Success 200 {object} model.FavoritesResponse "Reordered favorites"
// @Failure 400 {object} model.ErrorResponse "Invalid request body"
// @Router /favorites/order [put]
func (controller *FavoritesController) Reorder(c echo.Context) error {
	var dto model.ReorderFavoritesDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, badRequest("Invalid request body"))
	}

	list, err := controller.useCase.Reorder(c.Request().Context(), dto.Cities)
	if err != nil {
		return c.JSON(errorResponse(err))
	}
	return c.JSON(http.StatusOK, controller.response(list, true))
}

// Select godoc
// @Summary Show a favorite
// @Description Load the weather of a favorite into the dashboard
// @Tags favorites
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} model.WeatherResponse "Dashboard after the fetch"
// @Failure 400 {object} model.ErrorResponse "Invalid city name"
// @Failure 404 {object} model.ErrorResponse "City not found"
// @Failure 502 {object} model.ErrorResponse "Provider failure"
// @Router /favorites/{city}/select [post]
func (controller *FavoritesController) Select(c echo.Context) error {
	city, err := cityParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, badRequest("Invalid city name"))
	}

	outcome, err := controller.useCase.Select(c.Request().Context(), city)
	if err != nil {
		return c.JSON(errorResponse(err))
	}
	return c.JSON(http.StatusOK, model.WeatherResponse{Committed: outcome.Committed, Dashboard: dashboardView(outcome.State)})
}

// Refresh godoc
// @Summary Refresh favorites weather
// @Description Fetch current weather for every favorite in batches
// @Tags favorites
// @Produce json
// @Success 200 {object} favorites.RefreshReport "Refresh report"
// @Router /favorites/refresh [post]
func (controller *FavoritesController) Refresh(c echo.Context) error {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	report := controller.useCase.Refresh(c.Request().Context(), requestID)
	return c.JSON(http.StatusOK, report)
}

// cityParam decodes the city path parameter. Echo matches on the raw path when the
// client escaped it differently from Go, leaving the parameter escaped.
func cityParam(c echo.Context) (string, error) {
	city := c.Param("city")
	if c.Request().URL.RawPath == "" {
		return city, nil
	}
	return url.PathUnescape(city)
}

func (controller *FavoritesController) response(list []entity.FavoriteCity, changed bool) model.FavoritesResponse {
	return model.FavoritesResponse{
		Changed:   changed,
		Favorites: favoriteViews(list, controller.preferencesUseCase.Get().Unit),
	}
}
