package model

import (
	"time"

	"weather-dashboard/internal/domain/entity"
)

// TemperatureView holds temperatures converted to the active unit, one decimal
type TemperatureView struct {
	Current   float64 `json:"current"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	FeelsLike float64 `json:"feelsLike"`
}

// CurrentView is the current weather card
type CurrentView struct {
	City        string             `json:"city"`
	Country     string             `json:"country"`
	Coordinates entity.Coordinates `json:"coordinates"`
	Timestamp   time.Time          `json:"timestamp"`
	Temperature TemperatureView    `json:"temperature"`
	TempCounter int                `json:"tempCounter"`
	Humidity    int                `json:"humidity"`
	Pressure    int                `json:"pressure"`
	Visibility  int                `json:"visibility"`
	Wind        entity.Wind        `json:"wind"`
	Cloudiness  int                `json:"cloudiness"`
	Condition   entity.Condition   `json:"condition"`
	Sunrise     time.Time          `json:"sunrise"`
	Sunset      time.Time          `json:"sunset"`
}

// ForecastItemView is one card of the 24 hour forecast strip
type ForecastItemView struct {
	Timestamp     time.Time        `json:"timestamp"`
	Label         string           `json:"label"`
	Temp          float64          `json:"temp"`
	FeelsLike     float64          `json:"feelsLike"`
	Humidity      int              `json:"humidity"`
	Wind          entity.Wind      `json:"wind"`
	Condition     entity.Condition `json:"condition"`
	Precipitation int              `json:"precipitation"`
}

// FavoriteView is a favorite with its last known temperature in the active unit
type FavoriteView struct {
	Name        string              `json:"name"`
	Country     string              `json:"country,omitempty"`
	Coordinates *entity.Coordinates `json:"coord,omitempty"`
	Temp        *float64            `json:"temp,omitempty"`
	Description string              `json:"description,omitempty"`
	Icon        string              `json:"icon,omitempty"`
	LastUpdated *time.Time          `json:"lastUpdated,omitempty"`
}

// NearbyCityView is a map marker with its temperature in the active unit
type NearbyCityView struct {
	Name        string             `json:"name"`
	Country     string             `json:"country"`
	State       string             `json:"state,omitempty"`
	Coordinates entity.Coordinates `json:"coordinates"`
	Temp        *float64           `json:"temp,omitempty"`
	FeelsLike   *float64           `json:"feelsLike,omitempty"`
	Condition   string             `json:"condition,omitempty"`
	Description string             `json:"description,omitempty"`
	Icon        string             `json:"icon,omitempty"`
	Humidity    int                `json:"humidity,omitempty"`
	WindSpeed   float64            `json:"windSpeed,omitempty"`
	Pressure    int                `json:"pressure,omitempty"`
}

// DashboardView is the whole displayed state rendered in the active unit
type DashboardView struct {
	Unit              entity.Unit        `json:"unit"`
	Theme             entity.Theme       `json:"theme"`
	ShowInstallPrompt bool               `json:"showInstallPrompt"`
	Loading           bool               `json:"loading"`
	Error             *ErrorResponse     `json:"error,omitempty"`
	Current           *CurrentView       `json:"current,omitempty"`
	Forecast          []ForecastItemView `json:"forecast"`
	AirQuality        *entity.AirQuality `json:"airQuality,omitempty"`
	Favorites         []FavoriteView     `json:"favorites"`
	Nearby            []NearbyCityView   `json:"nearby"`
	NearbyError       string             `json:"nearbyError,omitempty"`
}

// WeatherResponse answers a fetch. Committed is false when a newer fetch replaced this one.
type WeatherResponse struct {
	Committed bool          `json:"committed"`
	Dashboard DashboardView `json:"dashboard"`
}

// LocateResponse answers a locate request
type LocateResponse struct {
	Located      bool                `json:"located"`
	Coordinates  *entity.Coordinates `json:"coordinates,omitempty"`
	FallbackCity string              `json:"fallbackCity,omitempty"`
	Notice       string              `json:"notice,omitempty"`
	AutoAdded    bool                `json:"autoAdded"`
	Committed    bool                `json:"committed"`
	Dashboard    DashboardView       `json:"dashboard"`
}

// FavoritesResponse lists favorites. Changed is false when the request was a no-op.
type FavoritesResponse struct {
	Changed   bool           `json:"changed"`
	Favorites []FavoriteView `json:"favorites"`
}

// NearbyResponse is the map data around an origin
type NearbyResponse struct {
	Origin      entity.Coordinates `json:"origin"`
	Country     string             `json:"country"`
	CountryName string             `json:"countryName"`
	Strategy    string             `json:"strategy"`
	Unit        entity.Unit        `json:"unit"`
	Cities      []NearbyCityView   `json:"cities"`
	Message     string             `json:"message,omitempty"`
	Committed   bool               `json:"committed"`
}

// PreferencesResponse is the stored preferences plus the install prompt decision
type PreferencesResponse struct {
	Unit              entity.Unit  `json:"unit"`
	Theme             entity.Theme `json:"theme"`
	ShowInstallPrompt bool         `json:"showInstallPrompt"`
	Dismissed         bool         `json:"dismissed"`
	Installed         bool         `json:"installed"`
}
