package nearby

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
)

// CapitalDiscoverer searches the grid around the country's capital, and around the origin
// when the capital is unknown or yields nothing
type CapitalDiscoverer struct {
	gateway api.WeatherGateway
	grid    *GridDiscoverer
}

func NewCapitalDiscoverer(gateway api.WeatherGateway) *CapitalDiscoverer {
	return &CapitalDiscoverer{gateway: gateway, grid: NewGridDiscoverer(gateway)}
}

func (d *CapitalDiscoverer) Strategy() Strategy {
	return StrategyCapital
}

func (d *CapitalDiscoverer) Discover(ctx context.Context, origin entity.Coordinates, country string) ([]entity.NearbyCity, error) {
	if capital, ok := Capital(country); ok {
		results, err := d.gateway.DirectGeocode(ctx, capital+","+country, 1)
		if err == nil && len(results) > 0 {
			center := entity.Coordinates{Lat: results[0].Lat, Lon: results[0].Lon}
			cities, _ := d.grid.Discover(ctx, center, country)
			if len(cities) > 0 {
				return cities, nil
			}
		}
	}
	return d.grid.Discover(ctx, origin, country)
}
