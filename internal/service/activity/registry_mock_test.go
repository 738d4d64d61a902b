package activity

import (
	"context"
	"sync"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

var _ serviceRegistry = &serviceRegistryMock{}

type serviceRegistryMock struct {
	ListServicesFunc func(ctx context.Context) ([]domain.ServiceDescriptor, error)

	calls struct {
		ListServices []struct {
			Ctx context.Context
		}
	}
	lockListServices sync.RWMutex
}

func (mock *serviceRegistryMock) ListServices(ctx context.Context) ([]domain.ServiceDescriptor, error) {
	if mock.ListServicesFunc == nil {
		panic("serviceRegistryMock.ListServicesFunc: method is nil but serviceRegistry.ListServices was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListServices.Lock()
	mock.calls.ListServices = append(mock.calls.ListServices, callInfo)
	mock.lockListServices.Unlock()
	return mock.ListServicesFunc(ctx)
}

func (mock *serviceRegistryMock) ListServicesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListServices.RLock()
	calls := mock.calls.ListServices
	mock.lockListServices.RUnlock()
	return calls
}
