package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/usecase/favorites"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// TaskLock keeps concurrent instances from running the same tick twice
type TaskLock interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

// FavoritesSchedulerConfig holds configuration for the favorites refresh scheduler
type FavoritesSchedulerConfig struct {
	CronExpression string
	Timeout        time.Duration
}

// FavoritesScheduler refreshes the weather of every favorite on a cron expression
type FavoritesScheduler struct {
	cron    *cron.Cron
	useCase favorites.UseCase
	lock    TaskLock
	config  FavoritesSchedulerConfig
}

// NewFavoritesScheduler creates the scheduler. lock may be nil when a single instance runs.
func NewFavoritesScheduler(useCase favorites.UseCase, lock TaskLock, config FavoritesSchedulerConfig) *FavoritesScheduler {
	return &FavoritesScheduler{
		cron:    cron.New(),
		useCase: useCase,
		lock:    lock,
		config:  config,
	}
}

// InitFavoritesScheduleTasks registers the refresh task and starts the cron. An empty expression disables it.
func (s *FavoritesScheduler) InitFavoritesScheduleTasks() error {
	if s.config.CronExpression == "" {
		log.Info(msg.GetMessage("favorites.cron.disabled"))
		return nil
	}

	if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
		log.Error(msg.GetMessage("favorites.cron.invalid", err.Error()))
		return err
	}

	s.cron.Start()
	log.Info(msg.GetMessage("favorites.cron.start", s.config.CronExpression))
	return nil
}

// ExecuteScheduledTask runs one refresh of every favorite
func (s *FavoritesScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	ctx := context.Background()
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	if s.lock != nil {
		acquired, err := s.lock.TryLock(ctx)
		if err != nil {
			log.Error(msg.GetMessage("favorites.cron.lock-failed", err.Error()), zap.String("request_id", requestID))
			return
		}
		if !acquired {
			log.Info(msg.GetMessage("favorites.cron.skipped"), zap.String("request_id", requestID))
			return
		}
		defer func() {
			if err := s.lock.Unlock(context.Background()); err != nil {
				log.Warn(msg.GetMessage("favorites.cron.lock-failed", err.Error()), zap.String("request_id", requestID))
			}
		}()
	}

	s.useCase.Refresh(ctx, requestID)
}

// Stop waits for a running task and stops the scheduler
func (s *FavoritesScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
