package nearby

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// gridOffsets are probed in order: center, the four cardinal points at 3 degrees, then the diagonals at 2 degrees
var gridOffsets = []entity.Coordinates{
	{Lat: 0, Lon: 0},
	{Lat: 3, Lon: 0},
	{Lat: -3, Lon: 0},
	{Lat: 0, Lon: 3},
	{Lat: 0, Lon: -3},
	{Lat: 2, Lon: 2},
	{Lat: 2, Lon: -2},
	{Lat: -2, Lon: 2},
	{Lat: -2, Lon: -2},
}

const reverseLimit = 5

// GridDiscoverer reverse-geocodes a fixed grid around the origin. It is a best-effort heuristic:
// results may be empty or fall outside the metropolitan area, and the first city seen wins on duplicate names.
type GridDiscoverer struct {
	gateway api.WeatherGateway
}

func NewGridDiscoverer(gateway api.WeatherGateway) *GridDiscoverer {
	return &GridDiscoverer{gateway: gateway}
}

func (d *GridDiscoverer) Strategy() Strategy {
	return StrategyGrid
}

// Discover never fails: a probe that errors is skipped
func (d *GridDiscoverer) Discover(ctx context.Context, origin entity.Coordinates, country string) ([]entity.NearbyCity, error) {
	seen := make(map[string]bool)
	cities := make([]entity.NearbyCity, 0, MaxCities)

	for _, offset := range gridOffsets {
		if ctx.Err() != nil {
			break
		}

		probe := origin.Offset(offset.Lat, offset.Lon)
		results, err := d.gateway.ReverseGeocode(ctx, probe, reverseLimit)
		if err != nil {
			log.Debug(msg.GetMessage("nearby.reverse-failed", probe.Lat, probe.Lon, err.Error()))
			continue
		}

		for _, result := range results {
			if result.Country != country || seen[result.Name] {
				continue
			}
			seen[result.Name] = true
			cities = append(cities, entity.NearbyCity{
				Name:        result.Name,
				Country:     result.Country,
				State:       result.State,
				Coordinates: entity.Coordinates{Lat: result.Lat, Lon: result.Lon},
			})
		}

		if len(cities) >= MaxCities {
			break
		}
	}

	if len(cities) > MaxCities {
		cities = cities[:MaxCities]
	}
	return cities, nil
}
