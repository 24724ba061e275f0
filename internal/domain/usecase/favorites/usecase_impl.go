package favorites

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/state"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/util/batchutils"
)

// ErrEmptyName is returned when a city name is blank
var ErrEmptyName = errors.New("empty favorite name")

type favoritesUseCase struct {
	store          *state.Store
	weatherUseCase weather.UseCase
	batchSize      int
	batchDelay     time.Duration
	now            func() time.Time
}

func NewFavoritesUseCase(store *state.Store, weatherUseCase weather.UseCase, batchSize int, batchDelay time.Duration) UseCase {
	if batchSize <= 0 {
		batchSize = 5
	}
	return &favoritesUseCase{
		store:          store,
		weatherUseCase: weatherUseCase,
		batchSize:      batchSize,
		batchDelay:     batchDelay,
		now:            time.Now,
	}
}

func (uc *favoritesUseCase) List() []entity.FavoriteCity {
	return uc.store.State().Favorites
}

// Add appends city. When the displayed snapshot is that city, its summary is attached.
func (uc *favoritesUseCase) Add(_ context.Context, city string) ([]entity.FavoriteCity, bool, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return uc.List(), false, ErrEmptyName
	}

	favorite := entity.FavoriteCity{Name: city}
	if snapshot := uc.store.State().Snapshot; snapshot != nil && snapshot.City == city {
		favorite = favorite.Enrich(*snapshot, uc.now())
	}

	next, changed := uc.store.Dispatch(state.FavoriteAdded{City: favorite})
	if changed {
		log.Info(msg.GetMessage("favorites.added", city))
	}
	return next.Favorites, changed, nil
}

func (uc *favoritesUseCase) Remove(_ context.Context, city string) ([]entity.FavoriteCity, bool) {
	next, changed := uc.store.Dispatch(state.FavoriteRemoved{Name: city})
	if changed {
		log.Info(msg.GetMessage("favorites.removed", city))
	}
	return next.Favorites, changed
}

func (uc *favoritesUseCase) Reorder(_ context.Context, names []string) ([]entity.FavoriteCity, error) {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return uc.List(), ErrEmptyName
		}
		cleaned = append(cleaned, name)
	}

	next, _ := uc.store.Dispatch(state.FavoritesReordered{Names: cleaned})
	log.Info(msg.GetMessage("favorites.reordered", len(cleaned)))
	return next.Favorites, nil
}

func (uc *favoritesUseCase) Prepend(_ context.Context, snapshot entity.WeatherSnapshot) (state.State, bool) {
	favorite := entity.FavoriteCity{Name: snapshot.City}.Enrich(snapshot, uc.now())
	next, changed := uc.store.Dispatch(state.FavoritePrepended{City: favorite})
	if changed {
		log.Info(msg.GetMessage("geolocation.auto-added", snapshot.City))
	}
	return next, changed
}

func (uc *favoritesUseCase) Select(ctx context.Context, city string) (weather.Outcome, error) {
	return uc.weatherUseCase.FetchByCity(ctx, city)
}

// Refresh looks up favorites in batches running concurrently, pausing between batches.
// A failed lookup keeps the previous summary of that favorite.
func (uc *favoritesUseCase) Refresh(ctx context.Context, requestID string) RefreshReport {
	favorites := uc.List()
	log.Info(msg.GetMessage("favorites.refresh.start", len(favorites), requestID))

	updates := make(map[string]entity.FavoriteCity, len(favorites))
	report := RefreshReport{Failed: []string{}}
	var mu sync.Mutex

	batchutils.ForEach(ctx, favorites, uc.batchSize, uc.batchDelay, func(ctx context.Context, favorite entity.FavoriteCity) {
		snapshot, err := uc.weatherUseCase.CurrentByCity(ctx, favorite.Name)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			log.Warn(msg.GetMessage("favorites.refresh.city-failed", favorite.Name, err.Error()))
			report.Failed = append(report.Failed, favorite.Name)
			return
		}
		updates[favorite.Name] = favorite.Enrich(*snapshot, uc.now())
	})

	next, _ := uc.store.Dispatch(state.FavoritesEnriched{Updates: updates})
	report.Updated = len(updates)
	report.Favorites = next.Favorites

	log.Info(msg.GetMessage("favorites.refresh.end", report.Updated, len(report.Failed), requestID))
	return report
}
