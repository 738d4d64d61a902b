// Package resolver maps query operations onto the POS order and activity
// services.
package resolver

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/activity"
	"github.com/heartmarshall/crmhub-backend/internal/service/posorder"
	"github.com/heartmarshall/crmhub-backend/internal/transport/graphql"
)

// posOrderService defines what resolver needs from the POS order service.
type posOrderService interface {
	Orders(ctx context.Context, in posorder.OrdersInput) ([]domain.Order, error)
	OrdersTotalCount(ctx context.Context, in posorder.FilterInput) (int64, error)
	OrderDetail(ctx context.Context, id string) (*domain.Order, error)
	Summary(ctx context.Context, in posorder.FilterInput) (domain.SummaryRow, error)
	GroupSummary(ctx context.Context, in posorder.GroupSummaryInput) (*domain.GroupSummary, error)
	Products(ctx context.Context, in posorder.ProductsInput) (*posorder.ProductsResult, error)
	Records(ctx context.Context, in posorder.RecordsInput) ([]domain.OrderRecord, error)
	RecordsCount(ctx context.Context, in posorder.FilterInput) (int64, error)
	Customers(ctx context.Context, in posorder.CustomersInput) ([]domain.CustomerOrders, error)
	CustomersTotalCount(ctx context.Context) (int64, error)
	CheckSubscription(ctx context.Context, in posorder.CheckSubscriptionInput) (*domain.Order, error)
	Subscriptions(ctx context.Context, in posorder.SubscriptionsInput) ([]domain.SubscriptionGroup, error)
	SubscriptionsTotalCount(ctx context.Context, in posorder.SubscriptionsInput) (int64, error)
}

// activityService defines what resolver needs from the activity service.
type activityService interface {
	List(ctx context.Context, in activity.ListInput) ([]domain.ActivityEntry, error)
	ByAction(ctx context.Context, in activity.ByActionInput) (*domain.ActivityPage, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	pos      posOrderService
	activity activityService
	log      *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(log *slog.Logger, pos posOrderService, activity activityService) *Resolver {
	return &Resolver{
		pos:      pos,
		activity: activity,
		log:      log.With("component", "resolver"),
	}
}

// Operations returns the operation table served by the query endpoint.
func (r *Resolver) Operations() map[string]graphql.Operation {
	ops := make(map[string]graphql.Operation)
	for name, resolve := range r.posOperations() {
		ops[name] = graphql.Operation{Permission: graphql.PermShowOrders, Resolve: resolve}
	}
	for name, resolve := range r.activityOperations() {
		ops[name] = graphql.Operation{Resolve: resolve}
	}
	return ops
}
