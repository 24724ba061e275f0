package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/preferences"
)

type PreferencesController struct {
	api     *echo.Group
	useCase preferences.UseCase
}

func NewPreferencesController(api *echo.Group, useCase preferences.UseCase) *PreferencesController {
	return &PreferencesController{api: api, useCase: useCase}
}

// InitPreferencesRoutes initializes preferences routes
func (controller *PreferencesController) InitPreferencesRoutes() {
	controller.api.GET("/preferences", controller.Get)
	controller.api.PUT("/preferences/unit", controller.SetUnit)
	controller.api.PUT("/preferences/theme", controller.SetTheme)
	controller.api.POST("/preferences/install-prompt/:action", controller.ResolveInstallPrompt)
}

// Get godoc
// @Summary Get preferences
// @Description Unit, theme and whether the install prompt should be offered
// @Tags preferences
// @Produce json
// @Success 200 {object} model.PreferencesResponse "Preferences"
// @Router /preferences [get]
func (controller *PreferencesController) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, preferencesView(controller.useCase.Get()))
}

// SetUnit godoc
// @Summary Change the temperature unit
// @Tags preferences
// @Accept json
// @Produce json
// @Param unit body model.UnitDTO true "C or F"
// @Success 200 {object} model.PreferencesResponse "Preferences"
// @Failure 400 {object} model.ErrorResponse "Invalid unit"
// @Router /preferences/unit [put]
func (controller *PreferencesController) SetUnit(c echo.Context) error {
	var dto model.UnitDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, badRequest("Invalid request body"))
	}

	updated, err := controller.useCase.SetUnit(c.Request().Context(), dto.Unit)
	if err != nil {
		return c.JSON(errorResponse(err))
	}
	return c.JSON(http.StatusOK, preferencesView(updated))
}

// SetTheme godoc
// @Summary Change the color theme
// @Tags preferences
// @Accept json
// @Produce json
// @Param theme body model.ThemeDTO true "light or dark"
// @Success 200 {object} model.PreferencesResponse "Preferences"
// @Failure 400 {object} model.ErrorResponse "Invalid theme"
// @Router /preferences/theme [put]
func (controller *PreferencesController) SetTheme(c echo.Context) error {
	var dto model.ThemeDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, badRequest("Invalid request body"))
	}

	updated, err := controller.useCase.SetTheme(c.Request().Context(), dto.Theme)
	if err != nil {
		return c.JSON(errorResponse(err))
	}
	return c.JSON(http.StatusOK, preferencesView(updated))
}

// ResolveInstallPrompt godoc
// @Summary Answer the install prompt
// @Description accept marks the application installed, dismiss hides the prompt for good
// @Tags preferences
// @Produce json
// @Param action path string true "accept or dismiss"
// @Success 200 {object} model.PreferencesResponse "Preferences"
// @Failure 400 {object} model.ErrorResponse "Invalid action"
// @Router /preferences/install-prompt/{action} [post]
func (controller *PreferencesController) ResolveInstallPrompt(c echo.Context) error {
	updated, err := controller.useCase.ResolveInstallPrompt(c.Request().Context(), c.Param("action"))
	if err != nil {
		return c.JSON(errorResponse(err))
	}
	return c.JSON(http.StatusOK, preferencesView(updated))
}
