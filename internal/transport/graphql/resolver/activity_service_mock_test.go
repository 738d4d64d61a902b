package resolver

import (
	"context"
	"sync"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/activity"
)

var _ activityService = &activityServiceMock{}

type activityServiceMock struct {
	ListFunc     func(ctx context.Context, in activity.ListInput) ([]domain.ActivityEntry, error)
	ByActionFunc func(ctx context.Context, in activity.ByActionInput) (*domain.ActivityPage, error)

	calls struct {
		List []struct {
			Ctx context.Context
			In  activity.ListInput
		}
		ByAction []struct {
			Ctx context.Context
			In  activity.ByActionInput
		}
	}
	lockList     sync.RWMutex
	lockByAction sync.RWMutex
}

func (mock *activityServiceMock) List(ctx context.Context, in activity.ListInput) ([]domain.ActivityEntry, error) {
	if mock.ListFunc == nil {
		panic("activityServiceMock.ListFunc: method is nil but activityService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  activity.ListInput
	}{Ctx: ctx, In: in}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *activityServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  activity.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *activityServiceMock) ByAction(ctx context.Context, in activity.ByActionInput) (*domain.ActivityPage, error) {
	if mock.ByActionFunc == nil {
		panic("activityServiceMock.ByActionFunc: method is nil but activityService.ByAction was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  activity.ByActionInput
	}{Ctx: ctx, In: in}
	mock.lockByAction.Lock()
	mock.calls.ByAction = append(mock.calls.ByAction, callInfo)
	mock.lockByAction.Unlock()
	return mock.ByActionFunc(ctx, in)
}

func (mock *activityServiceMock) ByActionCalls() []struct {
	Ctx context.Context
	In  activity.ByActionInput
} {
	mock.lockByAction.RLock()
	calls := mock.calls.ByAction
	mock.lockByAction.RUnlock()
	return calls
}
