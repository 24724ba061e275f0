package entity

import "math"

var compassPoints = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// CompassDirection maps degrees to an 8-point compass label
func CompassDirection(degrees float64) string {
	normalized := math.Mod(degrees, 360)
	if normalized < 0 {
		normalized += 360
	}
	index := int(math.Round(normalized/45)) % len(compassPoints)
	return compassPoints[index]
}
