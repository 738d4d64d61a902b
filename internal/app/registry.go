package app

import (
	"context"
	"slices"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

// staticRegistry serves the sibling services listed in configuration when no
// registry database is configured.
type staticRegistry struct {
	services []domain.ServiceDescriptor
}

func newStaticRegistry(services []domain.ServiceDescriptor) staticRegistry {
	return staticRegistry{services: slices.Clone(services)}
}

// ListServices returns the configured services in configuration order.
func (r staticRegistry) ListServices(context.Context) ([]domain.ServiceDescriptor, error) {
	return slices.Clone(r.services), nil
}
