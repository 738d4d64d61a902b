// Package activity assembles the activity feed of a content item from
// internal notes, local activity logs and the collectors of sibling
// services.
package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

type store interface {
	NotesByContent(ctx context.Context, contentID string) ([]domain.InternalNote, error)
	ActivityLogsByContent(ctx context.Context, contentID string) ([]domain.ActivityLog, error)
	FindActivityLogs(ctx context.Context, q domain.ActivityLogQuery) ([]domain.ActivityLog, int64, error)
	FindLogs(ctx context.Context, q domain.LogQuery) ([]domain.Log, int64, error)
}

type serviceRegistry interface {
	ListServices(ctx context.Context) ([]domain.ServiceDescriptor, error)
}

type collector interface {
	CollectItems(ctx context.Context, service string, req domain.CollectItemsRequest) ([]domain.ActivityEntry, error)
	ContentIDs(ctx context.Context, service, pipelineID, contentType string) ([]string, error)
}

// Service builds activity feeds.
type Service struct {
	store     store
	registry  serviceRegistry
	collector collector
	log       *slog.Logger
}

// NewService creates a new activity service.
func NewService(log *slog.Logger, store store, registry serviceRegistry, collector collector) *Service {
	return &Service{
		store:     store,
		registry:  registry,
		collector: collector,
		log:       log.With("service", "activity"),
	}
}

// registered reports whether name is a service the registry knows. Core is
// always known.
func (s *Service) registered(ctx context.Context, name string) (bool, error) {
	if name == domain.CoreServiceName {
		return true, nil
	}
	services, err := s.registry.ListServices(ctx)
	if err != nil {
		return false, fmt.Errorf("list services: %w", err)
	}
	for _, svc := range services {
		if svc.Name == name {
			return true, nil
		}
	}
	return false, nil
}
