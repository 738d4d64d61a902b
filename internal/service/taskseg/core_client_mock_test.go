package taskseg

import (
	"context"
	"sync"
)

var _ coreClient = &coreClientMock{}

type coreClientMock struct {
	ProductIDsByCategoriesFunc func(ctx context.Context, categoryIDs []string) ([]string, error)
	FilterConformityFunc       func(ctx context.Context, mainType string, mainTypeIDs []string, relType string) ([]string, error)

	calls struct {
		ProductIDsByCategories []struct {
			Ctx         context.Context
			CategoryIDs []string
		}
		FilterConformity []struct {
			Ctx         context.Context
			MainType    string
			MainTypeIDs []string
			RelType     string
		}
	}
	lockProductIDsByCategories sync.RWMutex
	lockFilterConformity       sync.RWMutex
}

func (mock *coreClientMock) ProductIDsByCategories(ctx context.Context, categoryIDs []string) ([]string, error) {
	if mock.ProductIDsByCategoriesFunc == nil {
		panic("coreClientMock.ProductIDsByCategoriesFunc: method is nil but coreClient.ProductIDsByCategories was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		CategoryIDs []string
	}{Ctx: ctx, CategoryIDs: categoryIDs}
	mock.lockProductIDsByCategories.Lock()
	mock.calls.ProductIDsByCategories = append(mock.calls.ProductIDsByCategories, callInfo)
	mock.lockProductIDsByCategories.Unlock()
	return mock.ProductIDsByCategoriesFunc(ctx, categoryIDs)
}

func (mock *coreClientMock) ProductIDsByCategoriesCalls() []struct {
	Ctx         context.Context
	CategoryIDs []string
} {
	mock.lockProductIDsByCategories.RLock()
	calls := mock.calls.ProductIDsByCategories
	mock.lockProductIDsByCategories.RUnlock()
	return calls
}

func (mock *coreClientMock) FilterConformity(ctx context.Context, mainType string, mainTypeIDs []string, relType string) ([]string, error) {
	if mock.FilterConformityFunc == nil {
		panic("coreClientMock.FilterConformityFunc: method is nil but coreClient.FilterConformity was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		MainType    string
		MainTypeIDs []string
		RelType     string
	}{Ctx: ctx, MainType: mainType, MainTypeIDs: mainTypeIDs, RelType: relType}
	mock.lockFilterConformity.Lock()
	mock.calls.FilterConformity = append(mock.calls.FilterConformity, callInfo)
	mock.lockFilterConformity.Unlock()
	return mock.FilterConformityFunc(ctx, mainType, mainTypeIDs, relType)
}

func (mock *coreClientMock) FilterConformityCalls() []struct {
	Ctx         context.Context
	MainType    string
	MainTypeIDs []string
	RelType     string
} {
	mock.lockFilterConformity.RLock()
	calls := mock.calls.FilterConformity
	mock.lockFilterConformity.RUnlock()
	return calls
}
