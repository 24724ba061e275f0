package entity

import (
	"fmt"

	"weather-dashboard/pkg/util/numberutils"
)

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the pair lies inside the WGS84 ranges
func (c Coordinates) Valid() bool {
	return numberutils.IsFloat64InRange(c.Lat, -90, 90) && numberutils.IsFloat64InRange(c.Lon, -180, 180)
}

// Offset returns the coordinates moved by the given degrees
func (c Coordinates) Offset(dLat, dLon float64) Coordinates {
	return Coordinates{Lat: c.Lat + dLat, Lon: c.Lon + dLon}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}
