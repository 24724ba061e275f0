package weather

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/state"
)

// Outcome is the result of a fetch into the current slot
type Outcome struct {
	// Seq is the sequence number issued for the fetch
	Seq uint64
	// Committed is false when a newer fetch superseded this one
	Committed bool
	// Snapshot is the fetched reading, set on success even when not committed
	Snapshot *entity.WeatherSnapshot
	// State is the dashboard state after the fetch settled
	State state.State
}

type UseCase interface {
	// FetchByCity loads current weather, forecast and air quality for a city into the current slot
	FetchByCity(ctx context.Context, city string) (Outcome, error)

	// FetchByCoords loads current weather, forecast and air quality for coordinates into the current slot
	FetchByCoords(ctx context.Context, coords entity.Coordinates) (Outcome, error)

	// CurrentByCity returns the current conditions for a city without touching the dashboard state
	CurrentByCity(ctx context.Context, city string) (*entity.WeatherSnapshot, error)

	// CurrentByCoords returns the current conditions for coordinates without touching the dashboard state
	CurrentByCoords(ctx context.Context, coords entity.Coordinates) (*entity.WeatherSnapshot, error)
}
