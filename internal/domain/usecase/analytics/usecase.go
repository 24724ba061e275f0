package analytics

import "weather-dashboard/internal/domain/entity"

// HourlyPoint is one step of the next 24 hours
type HourlyPoint struct {
	Time      string `json:"time"`
	Temp      int    `json:"temp"`
	FeelsLike int    `json:"feelsLike"`
	Humidity  int    `json:"humidity"`
	Pressure  int    `json:"pressure"`
}

// DailyPoint samples one entry per day of the forecast
type DailyPoint struct {
	Day           string `json:"day"`
	High          int    `json:"high"`
	Low           int    `json:"low"`
	Precipitation int    `json:"precipitation"`
}

// Summary aggregates the hourly series
type Summary struct {
	AverageTemp float64 `json:"averageTemp"`
	MaxHumidity int     `json:"maxHumidity"`
	MinPressure int     `json:"minPressure"`
	MaxPressure int     `json:"maxPressure"`
	DataPoints  int     `json:"dataPoints"`
}

// Analytics is the chart data derived from a forecast series, in one unit
type Analytics struct {
	City    string        `json:"city"`
	Unit    entity.Unit   `json:"unit"`
	Hourly  []HourlyPoint `json:"hourly"`
	Daily   []DailyPoint  `json:"daily"`
	Summary Summary       `json:"summary"`
}

type UseCase interface {
	// Current builds the analytics of the displayed forecast in the active unit
	Current() (*Analytics, error)
}
