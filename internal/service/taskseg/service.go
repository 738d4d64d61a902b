// Package taskseg implements the segment hooks of the tasks service: its
// segment metadata, condition extensions, association filters and initial
// selectors.
package taskseg

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

// ServiceName is the name tasks are registered under.
const ServiceName = "tasks"

const (
	propertyProductCategory = "productsData.categoryId"
	fieldProductID          = "productsData.productId"
	fieldStageID            = "stageId"
)

type taskStore interface {
	PipelineIDsByBoard(ctx context.Context, boardID string) ([]string, error)
	StageIDsByPipelines(ctx context.Context, pipelineIDs []string) ([]string, error)
}

type serviceRegistry interface {
	ListServices(ctx context.Context) ([]domain.ServiceDescriptor, error)
}

type searcher interface {
	IDsByQuery(ctx context.Context, index string, positive, negative domain.SearchQuery) ([]string, error)
}

type coreClient interface {
	ProductIDsByCategories(ctx context.Context, categoryIDs []string) ([]string, error)
	FilterConformity(ctx context.Context, mainType string, mainTypeIDs []string, relType string) ([]string, error)
}

type segmentClient interface {
	AssociationFilter(ctx context.Context, service string, req domain.AssociationFilterRequest) ([]string, error)
}

// Service answers segment hooks for tasks.
type Service struct {
	tasks    taskStore
	registry serviceRegistry
	search   searcher
	core     coreClient
	segments segmentClient
	log      *slog.Logger
}

// NewService creates a new task segment service.
func NewService(
	log *slog.Logger,
	tasks taskStore,
	registry serviceRegistry,
	search searcher,
	core coreClient,
	segments segmentClient,
) *Service {
	return &Service{
		tasks:    tasks,
		registry: registry,
		search:   search,
		core:     core,
		segments: segments,
		log:      log.With("service", "taskseg"),
	}
}

// Descriptor returns the registry entry of the tasks service.
func Descriptor() domain.ServiceDescriptor {
	return domain.ServiceDescriptor{
		Name: ServiceName,
		Meta: domain.ServiceMeta{Segments: Metadata()},
	}
}

// Metadata returns the segment metadata tasks advertise.
func Metadata() *domain.SegmentsMeta {
	return &domain.SegmentsMeta{
		DependentServices: []domain.DependentService{
			{Name: domain.CoreServiceName, TwoWay: true, Associated: true},
			{Name: "tickets", TwoWay: true, Associated: true},
			{Name: "sales", TwoWay: true, Associated: true},
			{Name: "purchases", TwoWay: true, Associated: true},
			{Name: "inbox", TwoWay: true},
		},
		ContentTypes: []domain.SegmentContentType{
			{Type: "task", Description: "Task", EsIndex: "tasks"},
		},
	}
}

// EsTypesMap returns the search field types tasks add. Tasks add none.
func (s *Service) EsTypesMap(context.Context) domain.TypesMap {
	return domain.TypesMap{TypesMap: map[string]any{}}
}
