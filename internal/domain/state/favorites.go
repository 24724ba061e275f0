package state

import "weather-dashboard/internal/domain/entity"

func indexOfFavorite(list []entity.FavoriteCity, name string) int {
	for i, favorite := range list {
		if favorite.Name == name {
			return i
		}
	}
	return -1
}

func addFavorite(list []entity.FavoriteCity, city entity.FavoriteCity) ([]entity.FavoriteCity, bool) {
	if indexOfFavorite(list, city.Name) >= 0 {
		return list, false
	}
	next := make([]entity.FavoriteCity, 0, len(list)+1)
	next = append(next, list...)
	return append(next, city), true
}

func prependFavorite(list []entity.FavoriteCity, city entity.FavoriteCity) ([]entity.FavoriteCity, bool) {
	if indexOfFavorite(list, city.Name) >= 0 {
		return list, false
	}
	next := make([]entity.FavoriteCity, 0, len(list)+1)
	next = append(next, city)
	return append(next, list...), true
}

func removeFavorite(list []entity.FavoriteCity, name string) ([]entity.FavoriteCity, bool) {
	next := make([]entity.FavoriteCity, 0, len(list))
	for _, favorite := range list {
		if favorite.Name != name {
			next = append(next, favorite)
		}
	}
	if len(next) == len(list) {
		return list, false
	}
	return next, true
}

// reorderFavorites takes the caller's order as the whole list, keeping known enrichment by name
func reorderFavorites(list []entity.FavoriteCity, names []string) []entity.FavoriteCity {
	known := make(map[string]entity.FavoriteCity, len(list))
	for _, favorite := range list {
		if _, ok := known[favorite.Name]; !ok {
			known[favorite.Name] = favorite
		}
	}

	next := make([]entity.FavoriteCity, 0, len(names))
	for _, name := range names {
		if favorite, ok := known[name]; ok {
			next = append(next, favorite)
			continue
		}
		next = append(next, entity.FavoriteCity{Name: name})
	}
	return next
}

func enrichFavorites(list []entity.FavoriteCity, updates map[string]entity.FavoriteCity) ([]entity.FavoriteCity, bool) {
	changed := false
	next := make([]entity.FavoriteCity, len(list))
	for i, favorite := range list {
		if update, ok := updates[favorite.Name]; ok {
			next[i] = update
			changed = true
			continue
		}
		next[i] = favorite
	}
	if !changed {
		return list, false
	}
	return next, true
}
