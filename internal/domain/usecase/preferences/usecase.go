package preferences

import (
	"context"

	"weather-dashboard/internal/domain/entity"
)

// InstallAction is what the user chose on the install prompt
type InstallAction string

const (
	InstallAccept  InstallAction = "accept"
	InstallDismiss InstallAction = "dismiss"
)

type UseCase interface {
	// Get returns the active preferences
	Get() entity.Preferences

	// SetUnit changes the display unit
	SetUnit(ctx context.Context, value string) (entity.Preferences, error)

	// SetTheme changes the color theme
	SetTheme(ctx context.Context, value string) (entity.Preferences, error)

	// ResolveInstallPrompt records the user's answer to the install prompt
	ResolveInstallPrompt(ctx context.Context, action string) (entity.Preferences, error)
}
