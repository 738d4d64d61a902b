package taskseg

import (
	"context"
	"sync"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

var _ searcher = &searcherMock{}

type searcherMock struct {
	IDsByQueryFunc func(ctx context.Context, index string, positive domain.SearchQuery, negative domain.SearchQuery) ([]string, error)

	calls struct {
		IDsByQuery []struct {
			Ctx      context.Context
			Index    string
			Positive domain.SearchQuery
			Negative domain.SearchQuery
		}
	}
	lockIDsByQuery sync.RWMutex
}

func (mock *searcherMock) IDsByQuery(ctx context.Context, index string, positive domain.SearchQuery, negative domain.SearchQuery) ([]string, error) {
	if mock.IDsByQueryFunc == nil {
		panic("searcherMock.IDsByQueryFunc: method is nil but searcher.IDsByQuery was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Index    string
		Positive domain.SearchQuery
		Negative domain.SearchQuery
	}{Ctx: ctx, Index: index, Positive: positive, Negative: negative}
	mock.lockIDsByQuery.Lock()
	mock.calls.IDsByQuery = append(mock.calls.IDsByQuery, callInfo)
	mock.lockIDsByQuery.Unlock()
	return mock.IDsByQueryFunc(ctx, index, positive, negative)
}

func (mock *searcherMock) IDsByQueryCalls() []struct {
	Ctx      context.Context
	Index    string
	Positive domain.SearchQuery
	Negative domain.SearchQuery
} {
	mock.lockIDsByQuery.RLock()
	calls := mock.calls.IDsByQuery
	mock.lockIDsByQuery.RUnlock()
	return calls
}
