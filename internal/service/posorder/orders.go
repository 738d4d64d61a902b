package posorder

import (
	"context"
	"fmt"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/validation"
)

const unknownProductName = "unknown"

// Orders returns one page of orders sorted by the requested field, or by
// number ascending.
func (s *Service) Orders(ctx context.Context, in OrdersInput) ([]domain.Order, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	f, err := s.buildFilter(ctx, in.FilterInput)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.Find(ctx, f, in.sort(), in.PageInput.resolve(domain.DefaultListPerPage))
	if err != nil {
		return nil, fmt.Errorf("list pos orders: %w", err)
	}
	return orders, nil
}

// OrdersTotalCount returns the number of orders matching the filter.
func (s *Service) OrdersTotalCount(ctx context.Context, in FilterInput) (int64, error) {
	if err := validation.Struct(in); err != nil {
		return 0, err
	}

	f, err := s.buildFilter(ctx, in)
	if err != nil {
		return 0, err
	}

	n, err := s.orders.Count(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("count pos orders: %w", err)
	}
	return n, nil
}

// OrderDetail returns one order with product names filled in on its items.
func (s *Service) OrderDetail(ctx context.Context, id string) (*domain.Order, error) {
	if id == "" {
		return nil, domain.NewValidationError("_id", "required")
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("pos order detail: %w", err)
	}

	var productIDs keySet
	for _, item := range order.Items {
		productIDs.add(item.ProductID)
	}

	names := make(map[string]string, len(productIDs.keys))
	if len(productIDs.keys) > 0 {
		products, err := s.core.FindProducts(ctx, productIDs.keys)
		if err != nil {
			return nil, fmt.Errorf("pos order detail: lookup products: %w", err)
		}
		for _, p := range products {
			names[p.ID] = p.Name
		}
	}

	for i := range order.Items {
		name := names[order.Items[i].ProductID]
		if name == "" {
			name = unknownProductName
		}
		order.Items[i].ProductName = name
	}
	return order, nil
}
