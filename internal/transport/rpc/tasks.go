package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/taskseg"
)

type taskSegmentService interface {
	PropertyConditionExtender(ctx context.Context, cond domain.SegmentCondition) (domain.ConditionExtension, error)
	AssociationFilter(ctx context.Context, req domain.AssociationFilterRequest) (domain.SegmentReply[[]string], error)
	InitialSelector(ctx context.Context, seg domain.Segment, opts domain.SelectorOptions) (domain.InitialSelector, error)
	EsTypesMap(ctx context.Context) domain.TypesMap
}

type conditionData struct {
	Condition domain.SegmentCondition `json:"condition"`
}

type selectorData struct {
	Segment domain.Segment          `json:"segment"`
	Options domain.SelectorOptions `json:"options"`
}

// TaskSegmentActions returns the segment actions of the tasks service.
func TaskSegmentActions(svc taskSegmentService) map[string]ActionFunc {
	return map[string]ActionFunc{
		"segments.dependentServices": func(context.Context, json.RawMessage) (any, error) {
			return taskseg.Metadata().DependentServices, nil
		},
		"segments.contentTypes": func(context.Context, json.RawMessage) (any, error) {
			return taskseg.Metadata().ContentTypes, nil
		},
		"segments.propertyConditionExtender": func(ctx context.Context, data json.RawMessage) (any, error) {
			in, err := decode[conditionData](data)
			if err != nil {
				return nil, fmt.Errorf("decode condition: %w", err)
			}
			return svc.PropertyConditionExtender(ctx, in.Condition)
		},
		"segments.associationFilter": func(ctx context.Context, data json.RawMessage) (any, error) {
			in, err := decode[domain.AssociationFilterRequest](data)
			if err != nil {
				return nil, fmt.Errorf("decode association filter: %w", err)
			}
			rep, err := svc.AssociationFilter(ctx, in)
			if err != nil {
				return nil, err
			}
			return Reply{Status: rep.Status, Data: rep.Data}, nil
		},
		"segments.esTypesMap": func(ctx context.Context, _ json.RawMessage) (any, error) {
			return svc.EsTypesMap(ctx), nil
		},
		"segments.initialSelector": func(ctx context.Context, data json.RawMessage) (any, error) {
			in, err := decode[selectorData](data)
			if err != nil {
				return nil, fmt.Errorf("decode selector: %w", err)
			}
			return svc.InitialSelector(ctx, in.Segment, in.Options)
		},
	}
}
