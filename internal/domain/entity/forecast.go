package entity

import "time"

// DisplayWindow is the number of 3-hour entries shown (24 hours)
const DisplayWindow = 8

// ForecastEntry is one 3-hour step of a forecast series
type ForecastEntry struct {
	Timestamp                time.Time   `json:"timestamp"`
	Label                    string      `json:"label"`
	Temperature              Temperature `json:"temperature"`
	Humidity                 int         `json:"humidity"`
	Pressure                 int         `json:"pressure"`
	Wind                     Wind        `json:"wind"`
	Cloudiness               int         `json:"cloudiness"`
	Condition                Condition   `json:"condition"`
	PrecipitationProbability float64     `json:"precipitationProbability"`
}

// ForecastSeries is the chronological sequence of entries returned by the provider
type ForecastSeries struct {
	City           string          `json:"city"`
	Country        string          `json:"country"`
	Coordinates    Coordinates     `json:"coordinates"`
	TimezoneOffset int             `json:"timezoneOffset"`
	Entries        []ForecastEntry `json:"entries"`
}

// Display returns the first DisplayWindow entries in their original order
func (f ForecastSeries) Display() []ForecastEntry {
	if len(f.Entries) <= DisplayWindow {
		return f.Entries
	}
	return f.Entries[:DisplayWindow]
}
