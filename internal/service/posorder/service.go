// Package posorder answers POS order listings, reports and subscription
// lookups. Related entities owned by sibling services are fetched in batches
// and joined in memory.
package posorder

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

type orderRepo interface {
	Find(ctx context.Context, f domain.OrderFilter, sort domain.SortSpec, page domain.Page) ([]domain.Order, error)
	Count(ctx context.Context, f domain.OrderFilter) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Lines(ctx context.Context, f domain.OrderFilter, page domain.Page) ([]domain.OrderLine, error)
	CountLines(ctx context.Context, f domain.OrderFilter) (int64, error)
	AmountTotals(ctx context.Context, f domain.OrderFilter, group domain.GroupField) ([]domain.AmountTotals, error)
	PaymentTotals(ctx context.Context, f domain.OrderFilter, group domain.GroupField) ([]domain.PaymentTotals, error)
	ProductHourSales(ctx context.Context, f domain.OrderFilter, productIDs []string) ([]domain.ProductHourSales, error)
	Customers(ctx context.Context, page domain.Page) ([]domain.CustomerOrders, error)
	CountCustomers(ctx context.Context) (int64, error)
	FindActiveSubscription(ctx context.Context, q domain.ActiveSubscriptionQuery) (*domain.Order, error)
	SubscriptionGroups(ctx context.Context, f domain.SubscriptionFilter, page domain.Page) ([]domain.SubscriptionGroup, error)
	CountSubscriptionGroups(ctx context.Context, f domain.SubscriptionFilter) (int64, error)
}

type posRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Pos, error)
	GetByToken(ctx context.Context, token string) (*domain.Pos, error)
	GetByBrand(ctx context.Context, brandID string) (*domain.Pos, error)
	FindByTokens(ctx context.Context, tokens []string) ([]domain.Pos, error)
}

type coreClient interface {
	FindBranches(ctx context.Context, ids []string) ([]domain.Branch, error)
	FindDepartments(ctx context.Context, ids []string) ([]domain.Department, error)
	FindProducts(ctx context.Context, ids []string) ([]domain.Product, error)
	FindCategories(ctx context.Context, ids []string) ([]domain.ProductCategory, error)
	FindCustomers(ctx context.Context, ids []string) ([]domain.Customer, error)
	FindCompanies(ctx context.Context, ids []string) ([]domain.Company, error)
	FindUsers(ctx context.Context, ids []string) ([]domain.User, error)
	ActiveCategory(ctx context.Context, id string) (domain.ProductCategory, error)
	CategorySubtree(ctx context.Context, order string) ([]domain.ProductCategory, error)
	SearchProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	CountProducts(ctx context.Context, q domain.ProductQuery) (int64, error)
}

// Service provides POS order queries.
type Service struct {
	orders orderRepo
	pos    posRepo
	core   coreClient
	loc    *time.Location
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a new POS order service. Calendar days ("today", date
// ranges) are taken in loc.
func NewService(
	log *slog.Logger,
	orders orderRepo,
	pos posRepo,
	core coreClient,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		orders: orders,
		pos:    pos,
		core:   core,
		loc:    loc,
		now:    time.Now,
		log:    log.With("service", "posorder"),
	}
}
