package state

import "weather-dashboard/internal/domain/entity"

// Action describes a state transition handled by Reduce
type Action interface {
	action()
}

// RequestStarted issues the next sequence number for a slot
type RequestStarted struct {
	Slot Slot
}

// WeatherLoaded commits a successful current-slot fetch
type WeatherLoaded struct {
	Seq        uint64
	Snapshot   entity.WeatherSnapshot
	Forecast   entity.ForecastSeries
	AirQuality *entity.AirQuality
}

// WeatherFailed records a failed current-slot fetch
type WeatherFailed struct {
	Seq uint64
	Err *entity.FetchError
}

// NearbyStarted marks a nearby lookup around an origin
type NearbyStarted struct {
	Seq     uint64
	Origin  entity.Coordinates
	Country string
}

// NearbyLoaded commits the cities found for the latest nearby lookup
type NearbyLoaded struct {
	Seq     uint64
	Country string
	Cities  []entity.NearbyCity
}

// NearbyFailed records a failed nearby lookup
type NearbyFailed struct {
	Seq     uint64
	Message string
}

// Hydrated replaces favorites and preferences with the persisted values
type Hydrated struct {
	Favorites   []entity.FavoriteCity
	Preferences entity.Preferences
}

// FavoriteAdded appends a city unless one with the same name exists
type FavoriteAdded struct {
	City entity.FavoriteCity
}

// FavoritePrepended puts a city first unless one with the same name exists
type FavoritePrepended struct {
	City entity.FavoriteCity
}

// FavoriteRemoved drops every favorite with the given name
type FavoriteRemoved struct {
	Name string
}

// FavoritesReordered replaces the list with the given order
type FavoritesReordered struct {
	Names []string
}

// FavoritesEnriched stores fresh summaries for the named favorites
type FavoritesEnriched struct {
	Updates map[string]entity.FavoriteCity
}

// UnitChanged sets the display unit
type UnitChanged struct {
	Unit entity.Unit
}

// ThemeChanged sets the color theme
type ThemeChanged struct {
	Theme entity.Theme
}

// InstallPromptChanged sets the install prompt flags
type InstallPromptChanged struct {
	Prompt entity.InstallPrompt
}

func (RequestStarted) action()       {}
func (WeatherLoaded) action()        {}
func (WeatherFailed) action()        {}
func (NearbyStarted) action()        {}
func (NearbyLoaded) action()         {}
func (NearbyFailed) action()         {}
func (Hydrated) action()             {}
func (FavoriteAdded) action()        {}
func (FavoritePrepended) action()    {}
func (FavoriteRemoved) action()      {}
func (FavoritesReordered) action()   {}
func (FavoritesEnriched) action()    {}
func (UnitChanged) action()          {}
func (ThemeChanged) action()         {}
func (InstallPromptChanged) action() {}
