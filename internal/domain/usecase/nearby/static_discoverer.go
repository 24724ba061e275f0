package nearby

import (
	"context"
	"strings"

	"weather-dashboard/internal/domain/entity"
)

// StaticDiscoverer answers from the built-in table of major cities, ignoring the origin
type StaticDiscoverer struct {
	cities map[string][]entity.NearbyCity
}

func NewStaticDiscoverer() *StaticDiscoverer {
	return &StaticDiscoverer{cities: majorCities}
}

func (d *StaticDiscoverer) Strategy() Strategy {
	return StrategyStatic
}

func (d *StaticDiscoverer) Discover(_ context.Context, _ entity.Coordinates, country string) ([]entity.NearbyCity, error) {
	known := d.cities[strings.ToUpper(country)]
	if len(known) > MaxCities {
		known = known[:MaxCities]
	}
	cities := make([]entity.NearbyCity, len(known))
	copy(cities, known)
	return cities, nil
}
