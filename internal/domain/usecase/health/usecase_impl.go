package health

import (
	"context"

	"weather-dashboard/internal/domain/gateway/storage"
	"weather-dashboard/internal/domain/model"
)

// ProviderInfo describes the configured weather provider
type ProviderInfo struct {
	Name             string
	BaseURL          string
	APIKeyConfigured bool
	RateLimitEnabled bool
}

type healthUseCase struct {
	store    storage.KeyValueStore
	provider ProviderInfo
}

func NewHealthUseCase(store storage.KeyValueStore, provider ProviderInfo) UseCase {
	return &healthUseCase{
		store:    store,
		provider: provider,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	storageHealth := useCase.store.Health(ctx)
	providerHealth := useCase.providerHealth()

	overallStatus := model.StatusUp
	if storageHealth.Status != model.StatusUp || providerHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Storage:  storageHealth,
		Provider: providerHealth,
	}
}

// providerHealth reports the provider configuration without spending quota on a probe call
func (useCase *healthUseCase) providerHealth() model.ComponentHealthStatus {
	details := map[string]string{
		"name":    useCase.provider.Name,
		"baseUrl": useCase.provider.BaseURL,
	}
	if useCase.provider.RateLimitEnabled {
		details["rateLimit"] = "enabled"
	}

	if !useCase.provider.APIKeyConfigured {
		details["error"] = "api key not configured"
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
