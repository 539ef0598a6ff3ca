package repository

import (
	"context"

	"github.com/DoisLONG/GenAIStudio/pkg/domain"
	"github.com/DoisLONG/GenAIStudio/pkg/domain/tenant"
)

// memoryTenantRepository serves the static tenant registry. The map is
// built once at startup and read-only afterwards, so lookups need no
// locking.
type memoryTenantRepository struct {
	configs map[string]*tenant.RegionConfig
}

func NewMemoryTenantRepository(configs map[string]*tenant.RegionConfig) tenant.Repository {
	if configs == nil {
		configs = map[string]*tenant.RegionConfig{}
	}
	return &memoryTenantRepository{configs: configs}
}

func (r *memoryTenantRepository) Get(_ context.Context, tenantID string) (*tenant.RegionConfig, error) {
	cfg, ok := r.configs[tenantID]
	if !ok {
		return nil, domain.NewNotFoundError("tenant", tenantID)
	}
	return cfg, nil
}
