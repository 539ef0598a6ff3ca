package tenant

import (
	"context"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=tenant_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Get(ctx context.Context, tenantID string) (*RegionConfig, error)
}
