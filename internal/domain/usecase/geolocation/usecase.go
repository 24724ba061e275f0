package geolocation

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/usecase/weather"
)

// Result describes how a locate request was served
type Result struct {
	// Located is true when the weather was loaded for the device position
	Located bool
	// Coordinates is the device position, when one was obtained
	Coordinates *entity.Coordinates
	// FallbackCity is set when the default city was loaded instead
	FallbackCity string
	// Notice is the user-facing explanation of a fallback
	Notice string
	// AutoAdded is true when the located city was prepended to favorites
	AutoAdded bool
	Outcome   weather.Outcome
}

type UseCase interface {
	// Locate asks locator for the position once and loads its weather, falling back to the default city
	Locate(ctx context.Context, locator Locator) (Result, error)
}
