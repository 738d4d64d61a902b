package posorder

import (
	"context"
	"sync"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

var _ orderRepo = &orderRepoMock{}

type orderRepoMock struct {
	FindFunc                    func(ctx context.Context, f domain.OrderFilter, sort domain.SortSpec, page domain.Page) ([]domain.Order, error)
	CountFunc                   func(ctx context.Context, f domain.OrderFilter) (int64, error)
	GetByIDFunc                 func(ctx context.Context, id string) (*domain.Order, error)
	LinesFunc                   func(ctx context.Context, f domain.OrderFilter, page domain.Page) ([]domain.OrderLine, error)
	CountLinesFunc              func(ctx context.Context, f domain.OrderFilter) (int64, error)
	AmountTotalsFunc            func(ctx context.Context, f domain.OrderFilter, group domain.GroupField) ([]domain.AmountTotals, error)
	PaymentTotalsFunc           func(ctx context.Context, f domain.OrderFilter, group domain.GroupField) ([]domain.PaymentTotals, error)
	ProductHourSalesFunc        func(ctx context.Context, f domain.OrderFilter, productIDs []string) ([]domain.ProductHourSales, error)
	CustomersFunc               func(ctx context.Context, page domain.Page) ([]domain.CustomerOrders, error)
	CountCustomersFunc          func(ctx context.Context) (int64, error)
	FindActiveSubscriptionFunc  func(ctx context.Context, q domain.ActiveSubscriptionQuery) (*domain.Order, error)
	SubscriptionGroupsFunc      func(ctx context.Context, f domain.SubscriptionFilter, page domain.Page) ([]domain.SubscriptionGroup, error)
	CountSubscriptionGroupsFunc func(ctx context.Context, f domain.SubscriptionFilter) (int64, error)

	calls struct {
		Find []struct {
			Ctx  context.Context
			F    domain.OrderFilter
			Sort domain.SortSpec
			Page domain.Page
		}
		Count []struct {
			Ctx context.Context
			F   domain.OrderFilter
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		Lines []struct {
			Ctx  context.Context
			F    domain.OrderFilter
			Page domain.Page
		}
		CountLines []struct {
			Ctx context.Context
			F   domain.OrderFilter
		}
		AmountTotals []struct {
			Ctx   context.Context
			F     domain.OrderFilter
			Group domain.GroupField
		}
		PaymentTotals []struct {
			Ctx   context.Context
			F     domain.OrderFilter
			Group domain.GroupField
		}
		ProductHourSales []struct {
			Ctx        context.Context
			F          domain.OrderFilter
			ProductIDs []string
		}
		Customers []struct {
			Ctx  context.Context
			Page domain.Page
		}
		CountCustomers []struct {
			Ctx context.Context
		}
		FindActiveSubscription []struct {
			Ctx context.Context
			Q   domain.ActiveSubscriptionQuery
		}
		SubscriptionGroups []struct {
			Ctx  context.Context
			F    domain.SubscriptionFilter
			Page domain.Page
		}
		CountSubscriptionGroups []struct {
			Ctx context.Context
			F   domain.SubscriptionFilter
		}
	}
	lockFind                    sync.RWMutex
	lockCount                   sync.RWMutex
	lockGetByID                 sync.RWMutex
	lockLines                   sync.RWMutex
	lockCountLines              sync.RWMutex
	lockAmountTotals            sync.RWMutex
	lockPaymentTotals           sync.RWMutex
	lockProductHourSales        sync.RWMutex
	lockCustomers               sync.RWMutex
	lockCountCustomers          sync.RWMutex
	lockFindActiveSubscription  sync.RWMutex
	lockSubscriptionGroups      sync.RWMutex
	lockCountSubscriptionGroups sync.RWMutex
}

func (mock *orderRepoMock) Find(ctx context.Context, f domain.OrderFilter, sort domain.SortSpec, page domain.Page) ([]domain.Order, error) {
	if mock.FindFunc == nil {
		panic("orderRepoMock.FindFunc: method is nil but orderRepo.Find was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    domain.OrderFilter
		Sort domain.SortSpec
		Page domain.Page
	}{Ctx: ctx, F: f, Sort: sort, Page: page}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, f, sort, page)
}

func (mock *orderRepoMock) FindCalls() []struct {
	Ctx  context.Context
	F    domain.OrderFilter
	Sort domain.SortSpec
	Page domain.Page
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *orderRepoMock) Count(ctx context.Context, f domain.OrderFilter) (int64, error) {
	if mock.CountFunc == nil {
		panic("orderRepoMock.CountFunc: method is nil but orderRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.OrderFilter
	}{Ctx: ctx, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *orderRepoMock) CountCalls() []struct {
	Ctx context.Context
	F   domain.OrderFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *orderRepoMock) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if mock.GetByIDFunc == nil {
		panic("orderRepoMock.GetByIDFunc: method is nil but orderRepo.GetByID was just called")
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

func (mock *orderRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *orderRepoMock) Lines(ctx context.Context, f domain.OrderFilter, page domain.Page) ([]domain.OrderLine, error) {
	if mock.LinesFunc == nil {
		panic("orderRepoMock.LinesFunc: method is nil but orderRepo.Lines was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    domain.OrderFilter
		Page domain.Page
	}{Ctx: ctx, F: f, Page: page}
	mock.lockLines.Lock()
	mock.calls.Lines = append(mock.calls.Lines, callInfo)
	mock.lockLines.Unlock()
	return mock.LinesFunc(ctx, f, page)
}

func (mock *orderRepoMock) LinesCalls() []struct {
	Ctx  context.Context
	F    domain.OrderFilter
	Page domain.Page
} {
	mock.lockLines.RLock()
	calls := mock.calls.Lines
	mock.lockLines.RUnlock()
	return calls
}

func (mock *orderRepoMock) CountLines(ctx context.Context, f domain.OrderFilter) (int64, error) {
	if mock.CountLinesFunc == nil {
		panic("orderRepoMock.CountLinesFunc: method is nil but orderRepo.CountLines was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.OrderFilter
	}{Ctx: ctx, F: f}
	mock.lockCountLines.Lock()
	mock.calls.CountLines = append(mock.calls.CountLines, callInfo)
	mock.lockCountLines.Unlock()
	return mock.CountLinesFunc(ctx, f)
}

func (mock *orderRepoMock) CountLinesCalls() []struct {
	Ctx context.Context
	F   domain.OrderFilter
} {
	mock.lockCountLines.RLock()
	calls := mock.calls.CountLines
	mock.lockCountLines.RUnlock()
	return calls
}

func (mock *orderRepoMock) AmountTotals(ctx context.Context, f domain.OrderFilter, group domain.GroupField) ([]domain.AmountTotals, error) {
	if mock.AmountTotalsFunc == nil {
		panic("orderRepoMock.AmountTotalsFunc: method is nil but orderRepo.AmountTotals was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		F     domain.OrderFilter
		Group domain.GroupField
	}{Ctx: ctx, F: f, Group: group}
	mock.lockAmountTotals.Lock()
	mock.calls.AmountTotals = append(mock.calls.AmountTotals, callInfo)
	mock.lockAmountTotals.Unlock()
	return mock.AmountTotalsFunc(ctx, f, group)
}

func (mock *orderRepoMock) AmountTotalsCalls() []struct {
	Ctx   context.Context
	F     domain.OrderFilter
	Group domain.GroupField
} {
	mock.lockAmountTotals.RLock()
	calls := mock.calls.AmountTotals
	mock.lockAmountTotals.RUnlock()
	return calls
}

func (mock *orderRepoMock) PaymentTotals(ctx context.Context, f domain.OrderFilter, group domain.GroupField) ([]domain.PaymentTotals, error) {
	if mock.PaymentTotalsFunc == nil {
		panic("orderRepoMock.PaymentTotalsFunc: method is nil but orderRepo.PaymentTotals was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		F     domain.OrderFilter
		Group domain.GroupField
	}{Ctx: ctx, F: f, Group: group}
	mock.lockPaymentTotals.Lock()
	mock.calls.PaymentTotals = append(mock.calls.PaymentTotals, callInfo)
	mock.lockPaymentTotals.Unlock()
	return mock.PaymentTotalsFunc(ctx, f, group)
}

func (mock *orderRepoMock) PaymentTotalsCalls() []struct {
	Ctx   context.Context
	F     domain.OrderFilter
	Group domain.GroupField
} {
	mock.lockPaymentTotals.RLock()
	calls := mock.calls.PaymentTotals
	mock.lockPaymentTotals.RUnlock()
	return calls
}

func (mock *orderRepoMock) ProductHourSales(ctx context.Context, f domain.OrderFilter, productIDs []string) ([]domain.ProductHourSales, error) {
	if mock.ProductHourSalesFunc == nil {
		panic("orderRepoMock.ProductHourSalesFunc: method is nil but orderRepo.ProductHourSales was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		F          domain.OrderFilter
		ProductIDs []string
	}{Ctx: ctx, F: f, ProductIDs: productIDs}
	mock.lockProductHourSales.Lock()
	mock.calls.ProductHourSales = append(mock.calls.ProductHourSales, callInfo)
	mock.lockProductHourSales.Unlock()
	return mock.ProductHourSalesFunc(ctx, f, productIDs)
}

func (mock *orderRepoMock) ProductHourSalesCalls() []struct {
	Ctx        context.Context
	F          domain.OrderFilter
	ProductIDs []string
} {
	mock.lockProductHourSales.RLock()
	calls := mock.calls.ProductHourSales
	mock.lockProductHourSales.RUnlock()
	return calls
}

func (mock *orderRepoMock) Customers(ctx context.Context, page domain.Page) ([]domain.CustomerOrders, error) {
	if mock.CustomersFunc == nil {
		panic("orderRepoMock.CustomersFunc: method is nil but orderRepo.Customers was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.Page
	}{Ctx: ctx, Page: page}
	mock.lockCustomers.Lock()
	mock.calls.Customers = append(mock.calls.Customers, callInfo)
	mock.lockCustomers.Unlock()
	return mock.CustomersFunc(ctx, page)
}

func (mock *orderRepoMock) CustomersCalls() []struct {
	Ctx  context.Context
	Page domain.Page
} {
	mock.lockCustomers.RLock()
	calls := mock.calls.Customers
	mock.lockCustomers.RUnlock()
	return calls
}

func (mock *orderRepoMock) CountCustomers(ctx context.Context) (int64, error) {
	if mock.CountCustomersFunc == nil {
		panic("orderRepoMock.CountCustomersFunc: method is nil but orderRepo.CountCustomers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountCustomers.Lock()
	mock.calls.CountCustomers = append(mock.calls.CountCustomers, callInfo)
	mock.lockCountCustomers.Unlock()
	return mock.CountCustomersFunc(ctx)
}

func (mock *orderRepoMock) CountCustomersCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountCustomers.RLock()
	calls := mock.calls.CountCustomers
	mock.lockCountCustomers.RUnlock()
	return calls
}

func (mock *orderRepoMock) FindActiveSubscription(ctx context.Context, q domain.ActiveSubscriptionQuery) (*domain.Order, error) {
	if mock.FindActiveSubscriptionFunc == nil {
		panic("orderRepoMock.FindActiveSubscriptionFunc: method is nil but orderRepo.FindActiveSubscription was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.ActiveSubscriptionQuery
	}{Ctx: ctx, Q: q}
	mock.lockFindActiveSubscription.Lock()
	mock.calls.FindActiveSubscription = append(mock.calls.FindActiveSubscription, callInfo)
	mock.lockFindActiveSubscription.Unlock()
	return mock.FindActiveSubscriptionFunc(ctx, q)
}

func (mock *orderRepoMock) FindActiveSubscriptionCalls() []struct {
	Ctx context.Context
	Q   domain.ActiveSubscriptionQuery
} {
	mock.lockFindActiveSubscription.RLock()
	calls := mock.calls.FindActiveSubscription
	mock.lockFindActiveSubscription.RUnlock()
	return calls
}

func (mock *orderRepoMock) SubscriptionGroups(ctx context.Context, f domain.SubscriptionFilter, page domain.Page) ([]domain.SubscriptionGroup, error) {
	if mock.SubscriptionGroupsFunc == nil {
		panic("orderRepoMock.SubscriptionGroupsFunc: method is nil but orderRepo.SubscriptionGroups was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    domain.SubscriptionFilter
		Page domain.Page
	}{Ctx: ctx, F: f, Page: page}
	mock.lockSubscriptionGroups.Lock()
	mock.calls.SubscriptionGroups = append(mock.calls.SubscriptionGroups, callInfo)
	mock.lockSubscriptionGroups.Unlock()
	return mock.SubscriptionGroupsFunc(ctx, f, page)
}

func (mock *orderRepoMock) SubscriptionGroupsCalls() []struct {
	Ctx  context.Context
	F    domain.SubscriptionFilter
	Page domain.Page
} {
	mock.lockSubscriptionGroups.RLock()
	calls := mock.calls.SubscriptionGroups
	mock.lockSubscriptionGroups.RUnlock()
	return calls
}

func (mock *orderRepoMock) CountSubscriptionGroups(ctx context.Context, f domain.SubscriptionFilter) (int64, error) {
	if mock.CountSubscriptionGroupsFunc == nil {
		panic("orderRepoMock.CountSubscriptionGroupsFunc: method is nil but orderRepo.CountSubscriptionGroups was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.SubscriptionFilter
	}{Ctx: ctx, F: f}
	mock.lockCountSubscriptionGroups.Lock()
	mock.calls.CountSubscriptionGroups = append(mock.calls.CountSubscriptionGroups, callInfo)
	mock.lockCountSubscriptionGroups.Unlock()
	return mock.CountSubscriptionGroupsFunc(ctx, f)
}

func (mock *orderRepoMock) CountSubscriptionGroupsCalls() []struct {
	Ctx context.Context
	F   domain.SubscriptionFilter
} {
	mock.lockCountSubscriptionGroups.RLock()
	calls := mock.calls.CountSubscriptionGroups
	mock.lockCountSubscriptionGroups.RUnlock()
	return calls
}
