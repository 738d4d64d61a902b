package taskseg

import (
	"context"
	"sync"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

var _ segmentClient = &segmentClientMock{}

type segmentClientMock struct {
	AssociationFilterFunc func(ctx context.Context, service string, req domain.AssociationFilterRequest) ([]string, error)

	calls struct {
		AssociationFilter []struct {
			Ctx     context.Context
			Service string
			Req     domain.AssociationFilterRequest
		}
	}
	lockAssociationFilter sync.RWMutex
}

func (mock *segmentClientMock) AssociationFilter(ctx context.Context, service string, req domain.AssociationFilterRequest) ([]string, error) {
	if mock.AssociationFilterFunc == nil {
		panic("segmentClientMock.AssociationFilterFunc: method is nil but segmentClient.AssociationFilter was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Service string
		Req     domain.AssociationFilterRequest
	}{Ctx: ctx, Service: service, Req: req}
	mock.lockAssociationFilter.Lock()
	mock.calls.AssociationFilter = append(mock.calls.AssociationFilter, callInfo)
	mock.lockAssociationFilter.Unlock()
	return mock.AssociationFilterFunc(ctx, service, req)
}

func (mock *segmentClientMock) AssociationFilterCalls() []struct {
	Ctx     context.Context
	Service string
	Req     domain.AssociationFilterRequest
} {
	mock.lockAssociationFilter.RLock()
	calls := mock.calls.AssociationFilter
	mock.lockAssociationFilter.RUnlock()
	return calls
}
