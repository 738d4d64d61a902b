package taskseg

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

// AssociationFilter returns the ids of mainType items associated with the
// propertyType items matching the queries.
//
// Associated types are searched in their index and mapped through core
// conformities. Other types are delegated to the service owning them. Tasks
// cannot resolve other task types, which yields an error status.
func (s *Service) AssociationFilter(ctx context.Context, req domain.AssociationFilterRequest) (domain.SegmentReply[[]string], error) {
	services, err := s.services(ctx)
	if err != nil {
		return domain.SegmentReply[[]string]{}, err
	}

	mainType := domain.ContentTypeRef(req.MainType)
	propertyType := domain.ContentTypeRef(req.PropertyType)

	if slices.Contains(associatedTypes(services, mainType.Service()), req.PropertyType) {
		index, err := esIndex(services, propertyType)
		if err != nil {
			return domain.SegmentReply[[]string]{}, err
		}

		mainTypeIDs, err := s.search.IDsByQuery(ctx, index, req.PositiveQuery, req.NegativeQuery)
		if err != nil {
			return domain.SegmentReply[[]string]{}, fmt.Errorf("association filter: %w", err)
		}
		ids, err := s.core.FilterConformity(ctx, propertyType.Name(), mainTypeIDs, mainType.Name())
		if err != nil {
			return domain.SegmentReply[[]string]{}, fmt.Errorf("association filter: %w", err)
		}
		return success(ids), nil
	}

	owner := propertyType.Service()
	if owner == ServiceName {
		s.log.WarnContext(ctx, "association with a task type is not supported",
			slog.String("main_type", req.MainType),
			slog.String("property_type", req.PropertyType),
		)
		return domain.SegmentReply[[]string]{Data: []string{}, Status: domain.SegmentsStatusError}, nil
	}

	if _, ok := services[owner]; !ok {
		s.log.WarnContext(ctx, "association with an unregistered service",
			slog.String("property_type", req.PropertyType),
		)
		return success(nil), nil
	}

	ids, err := s.segments.AssociationFilter(ctx, owner, req)
	if err != nil {
		return domain.SegmentReply[[]string]{}, fmt.Errorf("association filter via %s: %w", owner, err)
	}
	return success(ids), nil
}

func success(ids []string) domain.SegmentReply[[]string] {
	if ids == nil {
		ids = []string{}
	}
	return domain.SegmentReply[[]string]{Data: ids, Status: domain.SegmentsStatusSuccess}
}

// services returns the registered services keyed by name. Tasks are always
// present with their own metadata.
func (s *Service) services(ctx context.Context) (map[string]domain.ServiceDescriptor, error) {
	list, err := s.registry.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	byName := make(map[string]domain.ServiceDescriptor, len(list)+1)
	for _, d := range list {
		byName[d.Name] = d
	}
	byName[ServiceName] = Descriptor()
	return byName, nil
}

// associatedTypes lists the content types of the services that service
// declares as associated dependents, as "<service>:<type>".
func associatedTypes(services map[string]domain.ServiceDescriptor, service string) []string {
	own, ok := services[service]
	if !ok || own.Meta.Segments == nil {
		return nil
	}

	var types []string
	for _, dep := range own.Meta.Segments.DependentServices {
		if !dep.Associated {
			continue
		}
		d, ok := services[dep.Name]
		if !ok || d.Meta.Segments == nil {
			continue
		}
		for _, ct := range d.Meta.Segments.ContentTypes {
			types = append(types, dep.Name+":"+ct.Type)
		}
	}
	return types
}

func esIndex(services map[string]domain.ServiceDescriptor, ref domain.ContentTypeRef) (string, error) {
	if d, ok := services[ref.Service()]; ok && d.Meta.Segments != nil {
		for _, ct := range d.Meta.Segments.ContentTypes {
			if ct.Type == ref.Name() && ct.EsIndex != "" {
				return ct.EsIndex, nil
			}
		}
	}
	return "", fmt.Errorf("search index of %s: %w", ref, domain.ErrNotFound)
}
