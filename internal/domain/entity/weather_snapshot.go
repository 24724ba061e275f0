package entity

import "time"

// Temperature holds the temperature readings of a snapshot, in Celsius
type Temperature struct {
	Current   float64 `json:"current"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	FeelsLike float64 `json:"feelsLike"`
}

// Wind holds speed in m/s and direction in degrees
type Wind struct {
	Speed     float64 `json:"speed"`
	Degrees   float64 `json:"degrees"`
	Gust      float64 `json:"gust,omitempty"`
	Direction string  `json:"direction"`
}

// Condition is the provider's weather condition
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// WeatherSnapshot is a single point-in-time weather reading for one location
type WeatherSnapshot struct {
	CityID         int         `json:"cityId"`
	City           string      `json:"city"`
	Country        string      `json:"country"`
	Coordinates    Coordinates `json:"coordinates"`
	Timestamp      time.Time   `json:"timestamp"`
	Temperature    Temperature `json:"temperature"`
	Humidity       int         `json:"humidity"`
	Pressure       int         `json:"pressure"`
	Visibility     int         `json:"visibility"`
	Wind           Wind        `json:"wind"`
	Cloudiness     int         `json:"cloudiness"`
	Condition      Condition   `json:"condition"`
	Sunrise        time.Time   `json:"sunrise"`
	Sunset         time.Time   `json:"sunset"`
	TimezoneOffset int         `json:"timezoneOffset"`
}
