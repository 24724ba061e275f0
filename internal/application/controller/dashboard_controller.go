package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/state"
	"weather-dashboard/internal/domain/usecase/analytics"
)

type DashboardController struct {
	api              *echo.Group
	store            *state.Store
	analyticsUseCase analytics.UseCase
}

func NewDashboardController(api *echo.Group, store *state.Store, analyticsUseCase analytics.UseCase) *DashboardController {
	return &DashboardController{api: api, store: store, analyticsUseCase: analyticsUseCase}
}

// InitDashboardRoutes initializes dashboard routes
func (controller *DashboardController) InitDashboardRoutes() {
	controller.api.GET("/dashboard", controller.Dashboard)
	controller.api.GET("/analytics", controller.Analytics)
}

// Dashboard godoc
// @Summary Current dashboard
// @Description Render the displayed state in the active unit
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.DashboardView "Displayed state"
// @Router /dashboard [get]
func (controller *DashboardController) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, dashboardView(controller.store.State()))
}

// Analytics godoc
// @Summary Forecast analytics
// @Description Hourly and daily series of the displayed forecast in the active unit
// @Tags dashboard
// @Produce json
// @Success 200 {object} analytics.Analytics "Chart series"
// @Failure 404 {object} model.ErrorResponse "No forecast displayed"
// @Router /analytics [get]
func (controller *DashboardController) Analytics(c echo.Context) error {
	result, err := controller.analyticsUseCase.Current()
	if err != nil {
		return c.JSON(errorResponse(err))
	}
	return c.JSON(http.StatusOK, result)
}
