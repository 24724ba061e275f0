package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-dashboard/configs"
	_ "weather-dashboard/docs"
	"weather-dashboard/internal/application/controller"
	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/application/schedule"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/state"
	"weather-dashboard/internal/domain/usecase/analytics"
	"weather-dashboard/internal/domain/usecase/favorites"
	"weather-dashboard/internal/domain/usecase/geolocation"
	"weather-dashboard/internal/domain/usecase/health"
	"weather-dashboard/internal/domain/usecase/nearby"
	"weather-dashboard/internal/domain/usecase/preferences"
	"weather-dashboard/internal/domain/usecase/weather"
	infrastorage "weather-dashboard/internal/infra/storage"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"
	"weather-dashboard/pkg/resource"
)

// @title Weather Dashboard API
// @version 1.0
// @description Current conditions, forecast, analytics and nearby cities backed by OpenWeatherMap, with persisted favorites and preferences.
// @BasePath /weather-dashboard
func main() {
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Debug(msg.GetMessage("app.env-missing", err.Error()))
	}
	path, err := resource.Load()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.config-loaded", path))
	log.Info(msg.GetMessage("app.start"), zap.String("application", configs.Env.ApplicationName), zap.String("environment", configs.Env.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init storage and state
	backend, err := infrastorage.Open(ctx)
	if err != nil {
		log.Fatal("failed to open storage", zap.Error(err))
	}
	defer func() { _ = backend.Close() }()

	store := state.NewStore(state.Initial())
	adapter := preferences.NewAdapter(backend.Store, resource.GetDurationOrDefault("app.storage.timeout", 2*time.Second))
	if err = adapter.Hydrate(ctx, store); err != nil {
		log.Warn("starting without persisted preferences", zap.Error(err))
	}
	detach := adapter.Attach(store)
	defer detach()

	// Init gateway
	weatherGateway := newWeatherGateway()

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, store)
	favoritesUseCase := favorites.NewFavoritesUseCase(store, weatherUseCase,
		resource.GetIntOrDefault("app.favorites.refresh.batch-size", 5),
		resource.GetDurationOrDefault("app.favorites.refresh.batch-delay", 100*time.Millisecond))
	preferencesUseCase := preferences.NewPreferencesUseCase(store)
	geolocationUseCase := geolocation.NewGeolocationUseCase(
		resource.GetStringOrDefault("app.default-city", "Jakarta"),
		positionOptions(),
		weatherUseCase,
		favoritesUseCase)
	analyticsUseCase := analytics.NewAnalyticsUseCase(store)
	healthUseCase := health.NewHealthUseCase(backend.Store, health.ProviderInfo{
		Name:             resource.GetStringOrDefault("app.weather.provider", "openweathermap"),
		BaseURL:          resource.GetString("app.weather.data-url"),
		APIKeyConfigured: resource.IsSet("app.weather.api-key"),
		RateLimitEnabled: resource.GetBool("app.weather.rate-limit.enabled"),
	})

	discoverer, err := nearby.NewDiscoverer(resource.GetString("app.nearby.strategy"), weatherGateway)
	if err != nil {
		log.Fatal("failed to build nearby discovery", zap.Error(err))
	}
	nearbyUseCase := nearby.NewNearbyUseCase(nearby.Config{
		BatchSize:  resource.GetIntOrDefault("app.nearby.batch-size", 5),
		BatchDelay: resource.GetDurationOrDefault("app.nearby.batch-delay", 100*time.Millisecond),
		DefaultOrigin: entity.Coordinates{
			Lat: resource.GetFloat64("app.nearby.default-lat"),
			Lon: resource.GetFloat64("app.nearby.default-lon"),
		},
		DefaultCountry: resource.GetString("app.nearby.default-country"),
	}, discoverer, weatherGateway, weatherUseCase, store)

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: resource.GetStringSlice("app.server.cors-origins")}))
	middleware.SetupRequestLogger(e)

	group := e.Group(resource.GetString("app.server.context-path"))
	group.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Controller and Routes
	controller.NewHealthController(group, healthUseCase).InitHealthRoutes()
	controller.NewWeatherController(group, weatherUseCase, geolocationUseCase).InitWeatherRoutes()
	controller.NewDashboardController(group, store, analyticsUseCase).InitDashboardRoutes()
	controller.NewFavoritesController(group, favoritesUseCase, preferencesUseCase).InitFavoritesRoutes()
	controller.NewPreferencesController(group, preferencesUseCase).InitPreferencesRoutes()
	controller.NewNearbyController(group, nearbyUseCase, preferencesUseCase).InitNearbyRoutes()

	// Init Schedule
	var lock schedule.TaskLock
	if backend.Redis != nil {
		lock = redis.NewLock(backend.Redis, "favorites-refresh", resource.GetDurationOrDefault("app.favorites.refresh.lock-ttl", 5*time.Minute))
	}
	favoritesScheduler := schedule.NewFavoritesScheduler(favoritesUseCase, lock, schedule.FavoritesSchedulerConfig{
		CronExpression: resource.GetString("app.favorites.refresh.cron"),
		Timeout:        resource.GetDurationOrDefault("app.favorites.refresh.timeout", 2*time.Minute),
	})
	if err = favoritesScheduler.InitFavoritesScheduleTasks(); err != nil {
		log.Fatal("failed to start favorites scheduler", zap.Error(err))
	}

	// First load: locate once and show the position or the default city
	go initialLocate(ctx, geolocationUseCase)

	// Start Routes
	go func() {
		if err := e.Start(":" + resource.GetStringOrDefault("app.server.port", "8080")); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started"))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	favoritesScheduler.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDurationOrDefault("app.server.shutdown-timeout", 10*time.Second))
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down server", zap.Error(err))
	}
}

func newWeatherGateway() api.WeatherGateway {
	weatherGateway := api.NewWeatherGateway(api.GatewayConfig{
		DataURL: resource.GetString("app.weather.data-url"),
		GeoURL:  resource.GetString("app.weather.geo-url"),
		APIKey:  resource.GetString("app.weather.api-key"),
		Lang:    resource.GetStringOrDefault("app.weather.lang", "en"),
		Timeout: resource.GetDurationOrDefault("app.weather.timeout", 10*time.Second),
	})

	if !resource.GetBool("app.weather.rate-limit.enabled") {
		return weatherGateway
	}
	rps := resource.GetFloat64("app.weather.rate-limit.requests-per-second")
	if rps <= 0 {
		rps = 1
	}
	return api.NewRateLimitedWeatherGateway(weatherGateway, rps, resource.GetIntOrDefault("app.weather.rate-limit.burst", 10))
}

func positionOptions() geolocation.PositionOptions {
	options := geolocation.DefaultPositionOptions()
	options.Timeout = resource.GetDurationOrDefault("app.geolocation.timeout", options.Timeout)
	if resource.IsSet("app.geolocation.high-accuracy") {
		options.HighAccuracy = resource.GetBool("app.geolocation.high-accuracy")
	}
	return options
}

func initialLocate(ctx context.Context, useCase geolocation.UseCase) {
	locator := geolocation.ConfiguredLocator{}
	if resource.IsSet("app.geolocation.lat") && resource.IsSet("app.geolocation.lon") {
		locator.Position = &entity.Coordinates{
			Lat: resource.GetFloat64("app.geolocation.lat"),
			Lon: resource.GetFloat64("app.geolocation.lon"),
		}
	}

	result, err := useCase.Locate(ctx, locator)
	if err != nil {
		log.Error("initial weather load failed", zap.Error(err))
		return
	}
	if result.Notice != "" {
		log.Info(result.Notice)
	}
}
