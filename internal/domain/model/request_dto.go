package model

// LocateRequestDTO carries what the browser geolocation returned: a position or an error code
type LocateRequestDTO struct {
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
	Error string   `json:"error"`
}

type AddFavoriteDTO struct {
	City string `json:"city"`
}

type ReorderFavoritesDTO struct {
	Cities []string `json:"cities"`
}

type UnitDTO struct {
	Unit string `json:"unit"`
}

type ThemeDTO struct {
	Theme string `json:"theme"`
}
