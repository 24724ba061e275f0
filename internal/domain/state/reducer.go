package state

// Reduce applies action to state and reports whether anything changed.
// Results carrying a sequence older than the latest for their slot are discarded.
func Reduce(s State, action Action) (State, bool) {
	switch a := action.(type) {
	case RequestStarted:
		s.Sequences = s.Sequences.with(a.Slot, s.Latest(a.Slot)+1)
		if a.Slot == SlotCurrent {
			s.Loading = true
			s.Error = nil
		} else {
			s.NearbyLoading = true
			s.NearbyError = ""
		}
		return s, true

	case WeatherLoaded:
		if a.Seq != s.Latest(SlotCurrent) {
			return s, false
		}
		snapshot, forecast := a.Snapshot, a.Forecast
		s.Snapshot = &snapshot
		s.Forecast = &forecast
		s.AirQuality = a.AirQuality
		s.Loading = false
		s.Error = nil
		return s, true

	case WeatherFailed:
		if a.Seq != s.Latest(SlotCurrent) {
			return s, false
		}
		s.Loading = false
		s.Error = a.Err
		return s, true

	case NearbyStarted:
		if a.Seq != s.Latest(SlotNearby) {
			return s, false
		}
		origin := a.Origin
		s.NearbyOrigin = &origin
		s.NearbyCountry = a.Country
		return s, true

	case NearbyLoaded:
		if a.Seq != s.Latest(SlotNearby) {
			return s, false
		}
		s.Nearby = a.Cities
		s.NearbyCountry = a.Country
		s.NearbyLoading = false
		s.NearbyError = ""
		return s, true

	case NearbyFailed:
		if a.Seq != s.Latest(SlotNearby) {
			return s, false
		}
		s.Nearby = nil
		s.NearbyLoading = false
		s.NearbyError = a.Message
		return s, true

	case Hydrated:
		s.Favorites = a.Favorites
		s.Preferences = a.Preferences
		return s, true

	case FavoriteAdded:
		next, changed := addFavorite(s.Favorites, a.City)
		s.Favorites = next
		return s, changed

	case FavoritePrepended:
		next, changed := prependFavorite(s.Favorites, a.City)
		s.Favorites = next
		return s, changed

	case FavoriteRemoved:
		next, changed := removeFavorite(s.Favorites, a.Name)
		s.Favorites = next
		return s, changed

	case FavoritesReordered:
		s.Favorites = reorderFavorites(s.Favorites, a.Names)
		return s, true

	case FavoritesEnriched:
		next, changed := enrichFavorites(s.Favorites, a.Updates)
		s.Favorites = next
		return s, changed

	case UnitChanged:
		changed := s.Preferences.Unit != a.Unit
		s.Preferences.Unit = a.Unit
		return s, changed

	case ThemeChanged:
		changed := s.Preferences.Theme != a.Theme
		s.Preferences.Theme = a.Theme
		return s, changed

	case InstallPromptChanged:
		changed := s.Preferences.InstallPrompt != a.Prompt
		s.Preferences.InstallPrompt = a.Prompt
		return s, changed
	}

	return s, false
}
