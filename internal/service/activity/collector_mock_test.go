package activity

import (
	"context"
	"sync"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

var _ collector = &collectorMock{}

type collectorMock struct {
	CollectItemsFunc func(ctx context.Context, service string, req domain.CollectItemsRequest) ([]domain.ActivityEntry, error)
	ContentIDsFunc   func(ctx context.Context, service string, pipelineID string, contentType string) ([]string, error)

	calls struct {
		CollectItems []struct {
			Ctx     context.Context
			Service string
			Req     domain.CollectItemsRequest
		}
		ContentIDs []struct {
			Ctx         context.Context
			Service     string
			PipelineID  string
			ContentType string
		}
	}
	lockCollectItems sync.RWMutex
	lockContentIDs   sync.RWMutex
}

func (mock *collectorMock) CollectItems(ctx context.Context, service string, req domain.CollectItemsRequest) ([]domain.ActivityEntry, error) {
	if mock.CollectItemsFunc == nil {
		panic("collectorMock.CollectItemsFunc: method is nil but collector.CollectItems was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Service string
		Req     domain.CollectItemsRequest
	}{Ctx: ctx, Service: service, Req: req}
	mock.lockCollectItems.Lock()
	mock.calls.CollectItems = append(mock.calls.CollectItems, callInfo)
	mock.lockCollectItems.Unlock()
	return mock.CollectItemsFunc(ctx, service, req)
}

func (mock *collectorMock) CollectItemsCalls() []struct {
	Ctx     context.Context
	Service string
	Req     domain.CollectItemsRequest
} {
	mock.lockCollectItems.RLock()
	calls := mock.calls.CollectItems
	mock.lockCollectItems.RUnlock()
	return calls
}

func (mock *collectorMock) ContentIDs(ctx context.Context, service string, pipelineID string, contentType string) ([]string, error) {
	if mock.ContentIDsFunc == nil {
		panic("collectorMock.ContentIDsFunc: method is nil but collector.ContentIDs was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Service     string
		PipelineID  string
		ContentType string
	}{Ctx: ctx, Service: service, PipelineID: pipelineID, ContentType: contentType}
	mock.lockContentIDs.Lock()
	mock.calls.ContentIDs = append(mock.calls.ContentIDs, callInfo)
	mock.lockContentIDs.Unlock()
	return mock.ContentIDsFunc(ctx, service, pipelineID, contentType)
}

func (mock *collectorMock) ContentIDsCalls() []struct {
	Ctx         context.Context
	Service     string
	PipelineID  string
	ContentType string
} {
	mock.lockContentIDs.RLock()
	calls := mock.calls.ContentIDs
	mock.lockContentIDs.RUnlock()
	return calls
}
