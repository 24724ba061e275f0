package external

// CoordDTO is the coordinate pair used across OpenWeatherMap payloads
type CoordDTO struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// ConditionDTO represents an entry of the "weather" array
type ConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO holds temperature, pressure and humidity readings
type MainDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
	SeaLevel  int     `json:"sea_level,omitempty"`
	GrndLevel int     `json:"grnd_level,omitempty"`
}

// WindDTO holds wind speed and direction
type WindDTO struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
	Gust  float64 `json:"gust,omitempty"`
}

// CloudsDTO holds cloudiness in percent
type CloudsDTO struct {
	All int `json:"all"`
}

// SysDTO holds country and sun times of the current weather response
type SysDTO struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// CurrentWeatherResponse represents the response of /data/2.5/weather
type CurrentWeatherResponse struct {
	Coord      CoordDTO       `json:"coord"`
	Weather    []ConditionDTO `json:"weather"`
	Base       string         `json:"base"`
	Main       MainDTO        `json:"main"`
	Visibility int            `json:"visibility"`
	Wind       WindDTO        `json:"wind"`
	Clouds     CloudsDTO      `json:"clouds"`
	Dt         int64          `json:"dt"`
	Sys        SysDTO         `json:"sys"`
	Timezone   int            `json:"timezone"`
	ID         int            `json:"id"`
	Name       string         `json:"name"`
}

// ForecastItemDTO is one 3-hour step of /data/2.5/forecast
type ForecastItemDTO struct {
	Dt         int64          `json:"dt"`
	Main       MainDTO        `json:"main"`
	Weather    []ConditionDTO `json:"weather"`
	Clouds     CloudsDTO      `json:"clouds"`
	Wind       WindDTO        `json:"wind"`
	Visibility int            `json:"visibility"`
	Pop        float64        `json:"pop"`
	DtTxt      string         `json:"dt_txt"`
}

// ForecastCityDTO describes the city of a forecast response
type ForecastCityDTO struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Coord      CoordDTO `json:"coord"`
	Country    string   `json:"country"`
	Population int      `json:"population"`
	Timezone   int      `json:"timezone"`
	Sunrise    int64    `json:"sunrise"`
	Sunset     int64    `json:"sunset"`
}

// ForecastResponse represents the response of /data/2.5/forecast
type ForecastResponse struct {
	Cnt  int               `json:"cnt"`
	List []ForecastItemDTO `json:"list"`
	City ForecastCityDTO   `json:"city"`
}

// AirPollutionItemDTO is one reading of /data/2.5/air_pollution
type AirPollutionItemDTO struct {
	Main struct {
		AQI int `json:"aqi"`
	} `json:"main"`
	Components map[string]float64 `json:"components"`
	Dt         int64              `json:"dt"`
}

// AirPollutionResponse represents the response of /data/2.5/air_pollution
type AirPollutionResponse struct {
	Coord CoordDTO              `json:"coord"`
	List  []AirPollutionItemDTO `json:"list"`
}

// GeocodingResultDTO is an entry of /geo/1.0/direct and /geo/1.0/reverse
type GeocodingResultDTO struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}

// APIErrorResponse represents error responses from OpenWeatherMap. "cod" is a number or a string depending on the endpoint.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
