package entity

// NearbyCity is a population center shown on the map
type NearbyCity struct {
	Name        string          `json:"name"`
	Country     string          `json:"country"`
	State       string          `json:"state,omitempty"`
	Coordinates Coordinates     `json:"coordinates"`
	Weather     *WeatherSummary `json:"weather,omitempty"`
}
