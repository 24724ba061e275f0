package geolocation

import (
	"context"
	"errors"
	"time"

	"weather-dashboard/internal/domain/entity"
)

var (
	ErrPermissionDenied    = errors.New("geolocation permission denied")
	ErrPositionUnavailable = errors.New("geolocation position unavailable")
	ErrTimeout             = errors.New("geolocation timeout")
	ErrUnsupported         = errors.New("geolocation unsupported")
)

// PositionOptions mirrors the options of a browser position request
type PositionOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

// DefaultPositionOptions asks for a fresh, high accuracy fix within 10 seconds
func DefaultPositionOptions() PositionOptions {
	return PositionOptions{HighAccuracy: true, Timeout: 10 * time.Second, MaximumAge: 0}
}

// Locator yields the device position or one of the Err* values
type Locator interface {
	CurrentPosition(ctx context.Context, opts PositionOptions) (entity.Coordinates, error)
}

// LocatorFunc adapts a function to Locator
type LocatorFunc func(ctx context.Context, opts PositionOptions) (entity.Coordinates, error)

func (f LocatorFunc) CurrentPosition(ctx context.Context, opts PositionOptions) (entity.Coordinates, error) {
	return f(ctx, opts)
}

// ConfiguredLocator answers with a position set in configuration. Without one it is unsupported.
type ConfiguredLocator struct {
	Position *entity.Coordinates
}

func (l ConfiguredLocator) CurrentPosition(_ context.Context, _ PositionOptions) (entity.Coordinates, error) {
	if l.Position == nil {
		return entity.Coordinates{}, ErrUnsupported
	}
	if !l.Position.Valid() {
		return entity.Coordinates{}, ErrPositionUnavailable
	}
	return *l.Position, nil
}

// ReportedLocator answers with what a client reported: a position or a browser error code
type ReportedLocator struct {
	Position *entity.Coordinates
	Err      error
}

func (l ReportedLocator) CurrentPosition(_ context.Context, _ PositionOptions) (entity.Coordinates, error) {
	if l.Err != nil {
		return entity.Coordinates{}, l.Err
	}
	if l.Position == nil || !l.Position.Valid() {
		return entity.Coordinates{}, ErrPositionUnavailable
	}
	return *l.Position, nil
}

var errorCodes = map[string]error{
	"permission-denied":    ErrPermissionDenied,
	"position-unavailable": ErrPositionUnavailable,
	"timeout":              ErrTimeout,
	"unsupported":          ErrUnsupported,
}

// ParseErrorCode maps a client error code to its Err* value
func ParseErrorCode(code string) (error, bool) {
	err, ok := errorCodes[code]
	return err, ok
}
