package favorites

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/state"
	"weather-dashboard/internal/domain/usecase/weather"
)

// RefreshReport summarizes a favorites refresh
type RefreshReport struct {
	Updated   int                   `json:"updated"`
	Failed    []string              `json:"failed"`
	Favorites []entity.FavoriteCity `json:"favorites"`
}

type UseCase interface {
	// List returns the favorites in display order
	List() []entity.FavoriteCity

	// Add appends city unless it is already a favorite. The boolean reports whether the list changed.
	Add(ctx context.Context, city string) ([]entity.FavoriteCity, bool, error)

	// Remove drops every favorite named city. The boolean reports whether the list changed.
	Remove(ctx context.Context, city string) ([]entity.FavoriteCity, bool)

	// Reorder replaces the list with the given order
	Reorder(ctx context.Context, names []string) ([]entity.FavoriteCity, error)

	// Prepend puts the snapshot's city first unless it is already a favorite.
	// It returns the state after the attempt and whether the list changed.
	Prepend(ctx context.Context, snapshot entity.WeatherSnapshot) (state.State, bool)

	// Select loads the weather of a favorite into the current slot
	Select(ctx context.Context, city string) (weather.Outcome, error)

	// Refresh fetches current weather for every favorite and stores the summaries
	Refresh(ctx context.Context, requestID string) RefreshReport
}
