package posorder

import (
	"context"
	"fmt"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/validation"
)

// ProductsResult is one page of the product sales report.
type ProductsResult struct {
	TotalCount int64                 `json:"totalCount"`
	Products   []domain.ProductSales `json:"products"`
}

// Products lists products with their sales among orders matching the
// filter, broken down by hour of the paid date. Deleted products without
// sales are omitted from the page; TotalCount counts them.
func (s *Service) Products(ctx context.Context, in ProductsInput) (*ProductsResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	f, err := s.buildFilter(ctx, in.FilterInput)
	if err != nil {
		return nil, err
	}

	q, err := s.productQuery(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("pos products: %w", err)
	}

	var (
		products []domain.Product
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.core.SearchProducts(gctx, q)
		return err
	})
	g.Go(func() (err error) {
		total, err = s.core.CountProducts(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("pos products: %w", err)
	}

	var sales []domain.ProductHourSales
	if len(products) > 0 {
		ids := make([]string, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		sales, err = s.orders.ProductHourSales(ctx, f, ids)
		if err != nil {
			return nil, fmt.Errorf("pos products: %w", err)
		}
	}

	return &ProductsResult{TotalCount: total, Products: joinSales(products, sales)}, nil
}

// productQuery resolves the category subtree and search pattern.
func (s *Service) productQuery(ctx context.Context, in ProductsInput) (domain.ProductQuery, error) {
	page := in.PageInput.resolve(domain.DefaultRecordsPerPage)
	q := domain.ProductQuery{
		Limit: page.PerPage,
		Skip:  page.Skip(),
	}

	if in.CategoryID != "" {
		category, err := s.core.ActiveCategory(ctx, in.CategoryID)
		if err != nil {
			return domain.ProductQuery{}, fmt.Errorf("category %s: %w", in.CategoryID, err)
		}
		subtree, err := s.core.CategorySubtree(ctx, category.Order)
		if err != nil {
			return domain.ProductQuery{}, fmt.Errorf("category %s subtree: %w", in.CategoryID, err)
		}

		q.FilterByCategory = true
		q.CategoryIDs = make([]string, 0, len(subtree))
		for _, c := range subtree {
			q.CategoryIDs = append(q.CategoryIDs, c.ID)
		}
	}

	if in.SearchValue != "" {
		q.SearchPattern = ".*" + regexp.QuoteMeta(in.SearchValue) + ".*"
	}
	return q, nil
}

// joinSales attaches hourly sales to products and drops deleted products
// that sold nothing.
func joinSales(products []domain.Product, sales []domain.ProductHourSales) []domain.ProductSales {
	byProduct := make(map[string][]domain.ProductHourSales, len(products))
	for _, s := range sales {
		byProduct[s.ProductID] = append(byProduct[s.ProductID], s)
	}

	out := make([]domain.ProductSales, 0, len(products))
	for _, p := range products {
		ps := domain.ProductSales{Product: p, Counts: map[int]float64{}}
		for _, s := range byProduct[p.ID] {
			ps.Counts[s.Hour] = s.Count
			ps.Count += s.Count
			ps.Amount += s.Amount
		}
		if p.Status == domain.ProductStatusDeleted && ps.Count == 0 && ps.Amount == 0 {
			continue
		}
		out = append(out, ps)
	}
	return out
}
