package preferences

import (
	"context"
	"errors"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/state"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

var (
	ErrInvalidUnit   = errors.New("invalid unit")
	ErrInvalidTheme  = errors.New("invalid theme")
	ErrInvalidAction = errors.New("invalid install prompt action")
)

type preferencesUseCase struct {
	store *state.Store
}

func NewPreferencesUseCase(store *state.Store) UseCase {
	return &preferencesUseCase{store: store}
}

func (uc *preferencesUseCase) Get() entity.Preferences {
	return uc.store.State().Preferences
}

func (uc *preferencesUseCase) SetUnit(_ context.Context, value string) (entity.Preferences, error) {
	unit, err := entity.ParseUnit(value)
	if err != nil {
		return uc.Get(), ErrInvalidUnit
	}

	if _, changed := uc.store.Dispatch(state.UnitChanged{Unit: unit}); changed {
		log.Info(msg.GetMessage("preferences.unit-changed", unit))
	}
	return uc.Get(), nil
}

func (uc *preferencesUseCase) SetTheme(_ context.Context, value string) (entity.Preferences, error) {
	theme, err := entity.ParseTheme(value)
	if err != nil {
		return uc.Get(), ErrInvalidTheme
	}

	if _, changed := uc.store.Dispatch(state.ThemeChanged{Theme: theme}); changed {
		log.Info(msg.GetMessage("preferences.theme-changed", theme))
	}
	return uc.Get(), nil
}

func (uc *preferencesUseCase) ResolveInstallPrompt(_ context.Context, action string) (entity.Preferences, error) {
	prompt := uc.Get().InstallPrompt

	switch InstallAction(action) {
	case InstallAccept:
		prompt.Installed = true
	case InstallDismiss:
		prompt.Dismissed = true
	default:
		return uc.Get(), ErrInvalidAction
	}

	if _, changed := uc.store.Dispatch(state.InstallPromptChanged{Prompt: prompt}); changed {
		log.Info(msg.GetMessage("preferences.install-prompt", action))
	}
	return uc.Get(), nil
}
