package schedule

import (
	"context"
	"errors"
	"testing"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/usecase/favorites"
)

type countingUseCase struct {
	favorites.UseCase
	refreshes []string
}

func (u *countingUseCase) Refresh(_ context.Context, requestID string) favorites.RefreshReport {
	u.refreshes = append(u.refreshes, requestID)
	return favorites.RefreshReport{Favorites: []entity.FavoriteCity{}}
}

type stubLock struct {
	acquire  bool
	err      error
	unlocked int
}

func (l *stubLock) TryLock(context.Context) (bool, error) {
	return l.acquire, l.err
}

func (l *stubLock) Unlock(context.Context) error {
	l.unlocked++
	return nil
}

func TestExecuteWithoutLock(t *testing.T) {
	useCase := &countingUseCase{}
	NewFavoritesScheduler(useCase, nil, FavoritesSchedulerConfig{}).ExecuteScheduledTask()

	if len(useCase.refreshes) != 1 || useCase.refreshes[0] == "" {
		t.Errorf("expected one refresh with a request id, got %v", useCase.refreshes)
	}
}

func TestExecuteSkipsWhenLockHeldElsewhere(t *testing.T) {
	useCase := &countingUseCase{}
	lock := &stubLock{acquire: false}
	NewFavoritesScheduler(useCase, lock, FavoritesSchedulerConfig{}).ExecuteScheduledTask()

	if len(useCase.refreshes) != 0 || lock.unlocked != 0 {
		t.Errorf("expected no refresh, got %v (unlocked %d)", useCase.refreshes, lock.unlocked)
	}
}

func TestExecuteReleasesLock(t *testing.T) {
	useCase := &countingUseCase{}
	lock := &stubLock{acquire: true}
	NewFavoritesScheduler(useCase, lock, FavoritesSchedulerConfig{}).ExecuteScheduledTask()

	if len(useCase.refreshes) != 1 || lock.unlocked != 1 {
		t.Errorf("expected one refresh and one unlock, got %v (unlocked %d)", useCase.refreshes, lock.unlocked)
	}
}

func TestExecuteStopsOnLockError(t *testing.T) {
	useCase := &countingUseCase{}
	NewFavoritesScheduler(useCase, &stubLock{err: errors.New("down")}, FavoritesSchedulerConfig{}).ExecuteScheduledTask()

	if len(useCase.refreshes) != 0 {
		t.Errorf("expected no refresh, got %v", useCase.refreshes)
	}
}

func TestInitRejectsInvalidExpression(t *testing.T) {
	scheduler := NewFavoritesScheduler(&countingUseCase{}, nil, FavoritesSchedulerConfig{CronExpression: "not a cron"})
	if err := scheduler.InitFavoritesScheduleTasks(); err == nil {
		t.Error("expected an error for an invalid expression")
	}
}

func TestInitDisabled(t *testing.T) {
	scheduler := NewFavoritesScheduler(&countingUseCase{}, nil, FavoritesSchedulerConfig{})
	if err := scheduler.InitFavoritesScheduleTasks(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	scheduler.Stop()
}
