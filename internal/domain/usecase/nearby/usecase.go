package nearby

import (
	"context"

	"weather-dashboard/internal/domain/entity"
)

// Result is a committed or discarded nearby lookup
type Result struct {
	Origin      entity.Coordinates  `json:"origin"`
	Country     string              `json:"country"`
	CountryName string              `json:"countryName"`
	Strategy    Strategy            `json:"strategy"`
	Cities      []entity.NearbyCity `json:"cities"`
	Message     string              `json:"message,omitempty"`
	Committed   bool                `json:"committed"`
}

type UseCase interface {
	// Load discovers cities around origin and fetches their current weather.
	// A nil origin uses the displayed snapshot, or the default origin when nothing is displayed.
	Load(ctx context.Context, origin *entity.Coordinates, country string) (Result, error)
}
