package posorder

import (
	"context"
	"fmt"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/validation"
)

// Customers groups orders by customer, highest customer id first.
func (s *Service) Customers(ctx context.Context, in CustomersInput) ([]domain.CustomerOrders, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	groups, err := s.orders.Customers(ctx, in.PageInput.resolve(domain.DefaultListPerPage))
	if err != nil {
		return nil, fmt.Errorf("pos order customers: %w", err)
	}
	return groups, nil
}

// CustomersTotalCount returns the number of customers with orders.
func (s *Service) CustomersTotalCount(ctx context.Context) (int64, error) {
	n, err := s.orders.CountCustomers(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pos order customers: %w", err)
	}
	return n, nil
}
