package rpc

import (
	"context"
	"sync"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

var _ taskSegmentService = &taskSegmentServiceMock{}

type taskSegmentServiceMock struct {
	PropertyConditionExtenderFunc func(ctx context.Context, cond domain.SegmentCondition) (domain.ConditionExtension, error)
	AssociationFilterFunc         func(ctx context.Context, req domain.AssociationFilterRequest) (domain.SegmentReply[[]string], error)
	InitialSelectorFunc           func(ctx context.Context, seg domain.Segment, opts domain.SelectorOptions) (domain.InitialSelector, error)
	EsTypesMapFunc                func(ctx context.Context) domain.TypesMap

	calls struct {
		PropertyConditionExtender []struct {
			Ctx  context.Context
			Cond domain.SegmentCondition
		}
		AssociationFilter []struct {
			Ctx context.Context
			Req domain.AssociationFilterRequest
		}
		InitialSelector []struct {
			Ctx  context.Context
			Seg  domain.Segment
			Opts domain.SelectorOptions
		}
		EsTypesMap []struct {
			Ctx context.Context
		}
	}
	lockPropertyConditionExtender sync.RWMutex
	lockAssociationFilter         sync.RWMutex
	lockInitialSelector           sync.RWMutex
	lockEsTypesMap                sync.RWMutex
}

func (mock *taskSegmentServiceMock) PropertyConditionExtender(ctx context.Context, cond domain.SegmentCondition) (domain.ConditionExtension, error) {
	if mock.PropertyConditionExtenderFunc == nil {
		panic("taskSegmentServiceMock.PropertyConditionExtenderFunc: method is nil but taskSegmentService.PropertyConditionExtender was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Cond domain.SegmentCondition
	}{Ctx: ctx, Cond: cond}
	mock.lockPropertyConditionExtender.Lock()
	mock.calls.PropertyConditionExtender = append(mock.calls.PropertyConditionExtender, callInfo)
	mock.lockPropertyConditionExtender.Unlock()
	return mock.PropertyConditionExtenderFunc(ctx, cond)
}

func (mock *taskSegmentServiceMock) PropertyConditionExtenderCalls() []struct {
	Ctx  context.Context
	Cond domain.SegmentCondition
} {
	mock.lockPropertyConditionExtender.RLock()
	calls := mock.calls.PropertyConditionExtender
	mock.lockPropertyConditionExtender.RUnlock()
	return calls
}

func (mock *taskSegmentServiceMock) AssociationFilter(ctx context.Context, req domain.AssociationFilterRequest) (domain.SegmentReply[[]string], error) {
	if mock.AssociationFilterFunc == nil {
		panic("taskSegmentServiceMock.AssociationFilterFunc: method is nil but taskSegmentService.AssociationFilter was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.AssociationFilterRequest
	}{Ctx: ctx, Req: req}
	mock.lockAssociationFilter.Lock()
	mock.calls.AssociationFilter = append(mock.calls.AssociationFilter, callInfo)
	mock.lockAssociationFilter.Unlock()
	return mock.AssociationFilterFunc(ctx, req)
}

func (mock *taskSegmentServiceMock) AssociationFilterCalls() []struct {
	Ctx context.Context
	Req domain.AssociationFilterRequest
} {
	mock.lockAssociationFilter.RLock()
	calls := mock.calls.AssociationFilter
	mock.lockAssociationFilter.RUnlock()
	return calls
}

func (mock *taskSegmentServiceMock) InitialSelector(ctx context.Context, seg domain.Segment, opts domain.SelectorOptions) (domain.InitialSelector, error) {
	if mock.InitialSelectorFunc == nil {
		panic("taskSegmentServiceMock.InitialSelectorFunc: method is nil but taskSegmentService.InitialSelector was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Seg  domain.Segment
		Opts domain.SelectorOptions
	}{Ctx: ctx, Seg: seg, Opts: opts}
	mock.lockInitialSelector.Lock()
	mock.calls.InitialSelector = append(mock.calls.InitialSelector, callInfo)
	mock.lockInitialSelector.Unlock()
	return mock.InitialSelectorFunc(ctx, seg, opts)
}

func (mock *taskSegmentServiceMock) InitialSelectorCalls() []struct {
	Ctx  context.Context
	Seg  domain.Segment
	Opts domain.SelectorOptions
} {
	mock.lockInitialSelector.RLock()
	calls := mock.calls.InitialSelector
	mock.lockInitialSelector.RUnlock()
	return calls
}

func (mock *taskSegmentServiceMock) EsTypesMap(ctx context.Context) domain.TypesMap {
	if mock.EsTypesMapFunc == nil {
		panic("taskSegmentServiceMock.EsTypesMapFunc: method is nil but taskSegmentService.EsTypesMap was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockEsTypesMap.Lock()
	mock.calls.EsTypesMap = append(mock.calls.EsTypesMap, callInfo)
	mock.lockEsTypesMap.Unlock()
	return mock.EsTypesMapFunc(ctx)
}

func (mock *taskSegmentServiceMock) EsTypesMapCalls() []struct {
	Ctx context.Context
} {
	mock.lockEsTypesMap.RLock()
	calls := mock.calls.EsTypesMap
	mock.lockEsTypesMap.RUnlock()
	return calls
}
