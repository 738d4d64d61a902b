package resolver

import (
	"context"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/posorder"
	"github.com/heartmarshall/crmhub-backend/internal/transport/graphql"
)

type orderDetailInput struct {
	ID string `json:"_id"`
}

type noInput struct{}

func (r *Resolver) posOperations() map[string]graphql.ResolveFunc {
	return map[string]graphql.ResolveFunc{
		"posOrders":           op(r.pos.Orders),
		"posOrdersTotalCount": op(r.pos.OrdersTotalCount),
		"posOrderDetail": op(func(ctx context.Context, in orderDetailInput) (*domain.Order, error) {
			return r.pos.OrderDetail(ctx, in.ID)
		}),
		"posOrdersSummary":      op(r.pos.Summary),
		"posOrdersGroupSummary": op(r.pos.GroupSummary),
		"posProducts":           op(r.pos.Products),
		"posOrderRecords":       op(r.pos.Records),
		"posOrderRecordsCount":  op(r.pos.RecordsCount),
		"posOrderCustomers":     op(r.pos.Customers),
		"posOrderCustomersTotalCount": op(func(ctx context.Context, _ noInput) (int64, error) {
			return r.pos.CustomersTotalCount(ctx)
		}),
		"checkSubscription":                 op(r.pos.CheckSubscription),
		"posOrderBySubscriptions":           op(r.pos.Subscriptions),
		"posOrderBySubscriptionsTotalCount": op(r.pos.SubscriptionsTotalCount),
	}
}

// Compile-time check that posorder.Service satisfies posOrderService.
var _ posOrderService = (*posorder.Service)(nil)
