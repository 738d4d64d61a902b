package posorder

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/validation"
)

// CheckSubscription returns the newest active subscription order of the
// customer for one of the products whose item has not closed yet.
func (s *Service) CheckSubscription(ctx context.Context, in CheckSubscriptionInput) (*domain.Order, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	order, err := s.orders.FindActiveSubscription(ctx, domain.ActiveSubscriptionQuery{
		CustomerID: in.CustomerID,
		ProductIDs: in.productIDs(),
		Now:        s.now(),
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("cannot find subscription: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("check subscription: %w", err)
	}
	return order, nil
}

// Subscriptions lists subscription orders grouped by subscription id.
func (s *Service) Subscriptions(ctx context.Context, in SubscriptionsInput) ([]domain.SubscriptionGroup, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	groups, err := s.orders.SubscriptionGroups(ctx, in.filter(), in.PageInput.resolve(domain.DefaultSubscriptionLimit))
	if err != nil {
		return nil, fmt.Errorf("pos order subscriptions: %w", err)
	}
	return groups, nil
}

// SubscriptionsTotalCount returns the number of subscription groups.
func (s *Service) SubscriptionsTotalCount(ctx context.Context, in SubscriptionsInput) (int64, error) {
	if err := validation.Struct(in); err != nil {
		return 0, err
	}

	n, err := s.orders.CountSubscriptionGroups(ctx, in.filter())
	if err != nil {
		return 0, fmt.Errorf("count pos order subscriptions: %w", err)
	}
	return n, nil
}
