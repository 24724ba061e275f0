package entity

import (
	"encoding/json"
	"time"
)

// WeatherSummary is the compact reading attached to favorites and map cities
type WeatherSummary struct {
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feelsLike,omitempty"`
	Condition   string  `json:"condition,omitempty"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity,omitempty"`
	WindSpeed   float64 `json:"windSpeed,omitempty"`
	Pressure    int     `json:"pressure,omitempty"`
}

// SummaryOf extracts the compact summary of a snapshot
func SummaryOf(snapshot WeatherSnapshot) WeatherSummary {
	return WeatherSummary{
		Temp:        snapshot.Temperature.Current,
		FeelsLike:   snapshot.Temperature.FeelsLike,
		Condition:   snapshot.Condition.Main,
		Description: snapshot.Condition.Description,
		Icon:        snapshot.Condition.Icon,
		Humidity:    snapshot.Humidity,
		WindSpeed:   snapshot.Wind.Speed,
		Pressure:    snapshot.Pressure,
	}
}

// FavoriteCity is a user-pinned city, keyed by exact name
type FavoriteCity struct {
	Name        string          `json:"name"`
	Country     string          `json:"country,omitempty"`
	Coordinates *Coordinates    `json:"coord,omitempty"`
	Weather     *WeatherSummary `json:"weather,omitempty"`
	LastUpdated *time.Time      `json:"lastUpdated,omitempty"`
}

// UnmarshalJSON accepts both a bare city name and the enriched record
func (f *FavoriteCity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*f = FavoriteCity{Name: name}
		return nil
	}

	type plain FavoriteCity
	var record plain
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}
	*f = FavoriteCity(record)
	return nil
}

// Enrich returns a copy carrying the snapshot summary taken at the given time
func (f FavoriteCity) Enrich(snapshot WeatherSnapshot, at time.Time) FavoriteCity {
	coordinates := snapshot.Coordinates
	summary := SummaryOf(snapshot)
	f.Country = snapshot.Country
	f.Coordinates = &coordinates
	f.Weather = &summary
	f.LastUpdated = &at
	return f
}

// FavoriteNames lists the names in order
func FavoriteNames(favorites []FavoriteCity) []string {
	names := make([]string, len(favorites))
	for i, favorite := range favorites {
		names[i] = favorite.Name
	}
	return names
}
