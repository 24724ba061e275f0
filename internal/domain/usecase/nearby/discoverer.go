package nearby

import (
	"context"
	"fmt"
	"strings"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
)

// MaxCities bounds every discovery result
const MaxCities = 10

// Strategy names a discovery implementation
type Strategy string

const (
	StrategyGrid    Strategy = "grid"
	StrategyStatic  Strategy = "static"
	StrategyCapital Strategy = "capital"
)

// Discoverer finds up to MaxCities population centers of country around origin.
// An empty result is valid.
type Discoverer interface {
	Discover(ctx context.Context, origin entity.Coordinates, country string) ([]entity.NearbyCity, error)
	Strategy() Strategy
}

// NewDiscoverer builds the discoverer selected by name
func NewDiscoverer(name string, gateway api.WeatherGateway) (Discoverer, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case StrategyGrid, "":
		return NewGridDiscoverer(gateway), nil
	case StrategyStatic:
		return NewStaticDiscoverer(), nil
	case StrategyCapital:
		return NewCapitalDiscoverer(gateway), nil
	}
	return nil, fmt.Errorf("unknown nearby strategy %q", name)
}
