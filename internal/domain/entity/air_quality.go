package entity

import "time"

// AirQualityComponents are pollutant concentrations in μg/m3
type AirQualityComponents struct {
	CO   float64 `json:"co"`
	NO   float64 `json:"no"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	NH3  float64 `json:"nh3"`
}

// AirQuality is the optional air pollution reading of a location
type AirQuality struct {
	Index      int                  `json:"aqi"`
	Label      string               `json:"label"`
	Components AirQualityComponents `json:"components"`
	Timestamp  time.Time            `json:"timestamp"`
}

var airQualityLabels = map[int]string{
	1: "Good",
	2: "Fair",
	3: "Moderate",
	4: "Poor",
	5: "Very Poor",
}

// AirQualityLabel names the 1..5 provider index
func AirQualityLabel(index int) string {
	if label, ok := airQualityLabels[index]; ok {
		return label
	}
	return "Unknown"
}
