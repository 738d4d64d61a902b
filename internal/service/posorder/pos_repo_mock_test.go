package posorder

import (
	"context"
	"sync"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

var _ posRepo = &posRepoMock{}

type posRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Pos, error)
	GetByTokenFunc   func(ctx context.Context, token string) (*domain.Pos, error)
	GetByBrandFunc   func(ctx context.Context, brandID string) (*domain.Pos, error)
	FindByTokensFunc func(ctx context.Context, tokens []string) ([]domain.Pos, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		GetByToken []struct {
			Ctx   context.Context
			Token string
		}
		GetByBrand []struct {
			Ctx     context.Context
			BrandID string
		}
		FindByTokens []struct {
			Ctx    context.Context
			Tokens []string
		}
	}
	lockGetByID      sync.RWMutex
	lockGetByToken   sync.RWMutex
	lockGetByBrand   sync.RWMutex
	lockFindByTokens sync.RWMutex
}

func (mock *posRepoMock) GetByID(ctx context.Context, id string) (*domain.Pos, error) {
	if mock.GetByIDFunc == nil {
		panic("posRepoMock.GetByIDFunc: method is nil but posRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *posRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *posRepoMock) GetByToken(ctx context.Context, token string) (*domain.Pos, error) {
	if mock.GetByTokenFunc == nil {
		panic("posRepoMock.GetByTokenFunc: method is nil but posRepo.GetByToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockGetByToken.Lock()
	mock.calls.GetByToken = append(mock.calls.GetByToken, callInfo)
	mock.lockGetByToken.Unlock()
	return mock.GetByTokenFunc(ctx, token)
}

func (mock *posRepoMock) GetByTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockGetByToken.RLock()
	calls := mock.calls.GetByToken
	mock.lockGetByToken.RUnlock()
	return calls
}

func (mock *posRepoMock) GetByBrand(ctx context.Context, brandID string) (*domain.Pos, error) {
	if mock.GetByBrandFunc == nil {
		panic("posRepoMock.GetByBrandFunc: method is nil but posRepo.GetByBrand was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BrandID string
	}{Ctx: ctx, BrandID: brandID}
	mock.lockGetByBrand.Lock()
	mock.calls.GetByBrand = append(mock.calls.GetByBrand, callInfo)
	mock.lockGetByBrand.Unlock()
	return mock.GetByBrandFunc(ctx, brandID)
}

func (mock *posRepoMock) GetByBrandCalls() []struct {
	Ctx     context.Context
	BrandID string
} {
	mock.lockGetByBrand.RLock()
	calls := mock.calls.GetByBrand
	mock.lockGetByBrand.RUnlock()
	return calls
}

func (mock *posRepoMock) FindByTokens(ctx context.Context, tokens []string) ([]domain.Pos, error) {
	if mock.FindByTokensFunc == nil {
		panic("posRepoMock.FindByTokensFunc: method is nil but posRepo.FindByTokens was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Tokens []string
	}{Ctx: ctx, Tokens: tokens}
	mock.lockFindByTokens.Lock()
	mock.calls.FindByTokens = append(mock.calls.FindByTokens, callInfo)
	mock.lockFindByTokens.Unlock()
	return mock.FindByTokensFunc(ctx, tokens)
}

func (mock *posRepoMock) FindByTokensCalls() []struct {
	Ctx    context.Context
	Tokens []string
} {
	mock.lockFindByTokens.RLock()
	calls := mock.calls.FindByTokens
	mock.lockFindByTokens.RUnlock()
	return calls
}
