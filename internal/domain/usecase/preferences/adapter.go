package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/storage"
	"weather-dashboard/internal/domain/state"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// Adapter moves favorites and preferences between the state store and the key/value store.
// It reads once on load and writes after every committed change.
type Adapter struct {
	kv      storage.KeyValueStore
	timeout time.Duration
}

func NewAdapter(kv storage.KeyValueStore, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Adapter{kv: kv, timeout: timeout}
}

// Load reads the persisted favorites and preferences. Missing or unreadable values fall back to defaults.
func (a *Adapter) Load(ctx context.Context) ([]entity.FavoriteCity, entity.Preferences, error) {
	prefs := entity.DefaultPreferences()
	favorites := []entity.FavoriteCity{}

	raw, found, err := a.kv.Get(ctx, storage.KeyFavorites)
	if err != nil {
		return nil, prefs, fmt.Errorf("failed to load favorites: %w", err)
	}
	if found {
		if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
			log.Warn("ignoring unreadable favorites", zap.String("key", storage.KeyFavorites), zap.Error(err))
			favorites = []entity.FavoriteCity{}
		}
		favorites = named(favorites)
	}

	if raw, found, err = a.kv.Get(ctx, storage.KeyUnit); err != nil {
		return nil, prefs, fmt.Errorf("failed to load unit: %w", err)
	} else if found {
		if unit, err := entity.ParseUnit(raw); err == nil {
			prefs.Unit = unit
		}
	}

	if raw, found, err = a.kv.Get(ctx, storage.KeyTheme); err != nil {
		return nil, prefs, fmt.Errorf("failed to load theme: %w", err)
	} else if found {
		if theme, err := entity.ParseTheme(raw); err == nil {
			prefs.Theme = theme
		}
	}

	if prefs.InstallPrompt.Dismissed, err = a.flag(ctx, storage.KeyInstallDismissed); err != nil {
		return nil, prefs, err
	}
	if prefs.InstallPrompt.Installed, err = a.flag(ctx, storage.KeyInstalled); err != nil {
		return nil, prefs, err
	}

	return favorites, prefs, nil
}

// named drops entries without a city name, such as a stored null
func named(favorites []entity.FavoriteCity) []entity.FavoriteCity {
	kept := make([]entity.FavoriteCity, 0, len(favorites))
	for _, favorite := range favorites {
		if strings.TrimSpace(favorite.Name) == "" {
			continue
		}
		kept = append(kept, favorite)
	}
	return kept
}

func (a *Adapter) flag(ctx context.Context, key string) (bool, error) {
	raw, found, err := a.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	value, _ := strconv.ParseBool(raw)
	return value, nil
}

// Hydrate loads the persisted values into store
func (a *Adapter) Hydrate(ctx context.Context, store *state.Store) error {
	favorites, prefs, err := a.Load(ctx)
	if err != nil {
		return err
	}
	store.Dispatch(state.Hydrated{Favorites: favorites, Preferences: prefs})
	return nil
}

// Attach persists every committed change of store until the returned function is called
func (a *Adapter) Attach(store *state.Store) func() {
	return store.Subscribe(a.persist)
}

func (a *Adapter) persist(previous, current state.State) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	if !reflect.DeepEqual(previous.Favorites, current.Favorites) {
		a.write(ctx, storage.KeyFavorites, favoritesJSON(current.Favorites))
	}

	before, after := previous.Preferences, current.Preferences
	if before.Unit != after.Unit {
		a.write(ctx, storage.KeyUnit, string(after.Unit))
	}
	if before.Theme != after.Theme {
		a.write(ctx, storage.KeyTheme, string(after.Theme))
	}
	if before.InstallPrompt.Dismissed != after.InstallPrompt.Dismissed {
		a.write(ctx, storage.KeyInstallDismissed, strconv.FormatBool(after.InstallPrompt.Dismissed))
	}
	if before.InstallPrompt.Installed != after.InstallPrompt.Installed {
		a.write(ctx, storage.KeyInstalled, strconv.FormatBool(after.InstallPrompt.Installed))
	}
}

func (a *Adapter) write(ctx context.Context, key, value string) {
	if err := a.kv.Set(ctx, key, value); err != nil {
		log.Error(msg.GetMessage("favorites.persist-failed", err.Error()), zap.String("key", key))
	}
}

func favoritesJSON(favorites []entity.FavoriteCity) string {
	if favorites == nil {
		favorites = []entity.FavoriteCity{}
	}
	data, err := json.Marshal(favorites)
	if err != nil {
		return "[]"
	}
	return string(data)
}
