package state

import "weather-dashboard/internal/domain/entity"

// Slot identifies a display area whose fetches are sequenced independently
type Slot string

const (
	SlotCurrent Slot = "current"
	SlotNearby  Slot = "nearby"
)

// Sequences holds the latest request number issued per slot
type Sequences map[Slot]uint64

func (s Sequences) with(slot Slot, seq uint64) Sequences {
	next := make(Sequences, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[slot] = seq
	return next
}

// State is everything the dashboard displays. Values are never mutated in place:
// each transition returns a new State that shares untouched fields with the old one.
type State struct {
	Snapshot   *entity.WeatherSnapshot `json:"snapshot"`
	Forecast   *entity.ForecastSeries  `json:"forecast"`
	AirQuality *entity.AirQuality      `json:"airQuality"`
	Loading    bool                    `json:"loading"`
	Error      *entity.FetchError      `json:"error"`

	Favorites   []entity.FavoriteCity `json:"favorites"`
	Preferences entity.Preferences    `json:"preferences"`

	Nearby        []entity.NearbyCity `json:"nearby"`
	NearbyOrigin  *entity.Coordinates `json:"nearbyOrigin"`
	NearbyCountry string              `json:"nearbyCountry"`
	NearbyLoading bool                `json:"nearbyLoading"`
	NearbyError   string              `json:"nearbyError"`

	Sequences Sequences `json:"-"`
}

// Initial returns the empty state with default preferences
func Initial() State {
	return State{
		Favorites:   []entity.FavoriteCity{},
		Preferences: entity.DefaultPreferences(),
		Sequences:   Sequences{},
	}
}

// Latest returns the newest sequence issued for slot
func (s State) Latest(slot Slot) uint64 {
	return s.Sequences[slot]
}
