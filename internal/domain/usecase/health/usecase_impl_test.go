package health

import (
	"context"
	"testing"

	"weather-dashboard/internal/domain/gateway/storage"
	"weather-dashboard/internal/domain/model"
)

func TestCheckHealthUp(t *testing.T) {
	useCase := NewHealthUseCase(storage.NewMemoryStore(), ProviderInfo{Name: "openweathermap", APIKeyConfigured: true})

	response := useCase.CheckHealth(context.Background())
	if response.Status != model.StatusUp || response.Storage.Status != model.StatusUp || response.Provider.Status != model.StatusUp {
		t.Errorf("expected everything up, got %+v", response)
	}
}

func TestCheckHealthWithoutAPIKey(t *testing.T) {
	useCase := NewHealthUseCase(storage.NewMemoryStore(), ProviderInfo{Name: "openweathermap"})

	response := useCase.CheckHealth(context.Background())
	if response.Status != model.StatusDown || response.Provider.Status != model.StatusDown {
		t.Errorf("expected provider down, got %+v", response)
	}
	if response.Provider.Details["error"] == "" {
		t.Error("expected an error detail")
	}
}
