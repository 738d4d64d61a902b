package posorder

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/validation"
)

// Records returns one page of order line items, newest first, decorated
// with their related entities.
func (s *Service) Records(ctx context.Context, in RecordsInput) ([]domain.OrderRecord, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	f, err := s.buildFilter(ctx, in.FilterInput)
	if err != nil {
		return nil, err
	}

	lines, err := s.orders.Lines(ctx, f, in.PageInput.resolve(domain.DefaultRecordsPerPage))
	if err != nil {
		return nil, fmt.Errorf("order records: %w", err)
	}
	if len(lines) == 0 {
		return []domain.OrderRecord{}, nil
	}

	rel, err := s.fetchRelated(ctx, lines)
	if err != nil {
		return nil, fmt.Errorf("order records: %w", err)
	}

	records := make([]domain.OrderRecord, 0, len(lines))
	for _, line := range lines {
		rec, err := rel.join(line)
		if err != nil {
			return nil, fmt.Errorf("order records: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// RecordsCount returns the number of line items matching the filter.
func (s *Service) RecordsCount(ctx context.Context, in FilterInput) (int64, error) {
	if err := validation.Struct(in); err != nil {
		return 0, err
	}

	f, err := s.buildFilter(ctx, in)
	if err != nil {
		return 0, err
	}

	n, err := s.orders.CountLines(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("count order records: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Join engine
// ---------------------------------------------------------------------------

// related holds the entities referenced by a page of lines, keyed by id
// (terminals by token).
type related struct {
	branches    map[string]*domain.Branch
	departments map[string]*domain.Department
	products    map[string]*domain.Product
	categories  map[string]*domain.ProductCategory
	customers   map[string]*domain.Customer
	companies   map[string]*domain.Company
	users       map[string]*domain.User
	posByToken  map[string]*domain.Pos
}

// fetchRelated issues one batched lookup per entity type. Lookups run
// concurrently; the first failure cancels the rest and fails the request.
// Categories depend on the products found and are fetched after them.
func (s *Service) fetchRelated(ctx context.Context, lines []domain.OrderLine) (*related, error) {
	var branchIDs, departmentIDs, productIDs, customerIDs, companyIDs, userIDs, tokens keySet
	for _, l := range lines {
		branchIDs.add(l.BranchID)
		departmentIDs.add(l.DepartmentID)
		productIDs.add(l.Item.ProductID)
		userIDs.add(l.UserID)
		tokens.add(l.PosToken)

		switch l.CustomerType.Effective() {
		case domain.CustomerTypeCustomer:
			customerIDs.add(l.CustomerID)
		case domain.CustomerTypeCompany:
			companyIDs.add(l.CustomerID)
		case domain.CustomerTypeUser:
			userIDs.add(l.CustomerID)
		}
	}

	lk := s.newLookups()
	rel := &related{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		rel.branches, err = loadAll(gctx, lk.branches, branchIDs.keys)
		return wrapLookup("branches", err)
	})
	g.Go(func() (err error) {
		rel.departments, err = loadAll(gctx, lk.departments, departmentIDs.keys)
		return wrapLookup("departments", err)
	})
	g.Go(func() (err error) {
		rel.products, err = loadAll(gctx, lk.products, productIDs.keys)
		if err != nil {
			return wrapLookup("products", err)
		}

		var categoryIDs keySet
		for _, id := range productIDs.keys {
			if p := rel.products[id]; p != nil {
				categoryIDs.add(p.CategoryID)
			}
		}
		rel.categories, err = loadAll(gctx, lk.categories, categoryIDs.keys)
		return wrapLookup("categories", err)
	})
	g.Go(func() (err error) {
		rel.customers, err = loadAll(gctx, lk.customers, customerIDs.keys)
		return wrapLookup("customers", err)
	})
	g.Go(func() (err error) {
		rel.companies, err = loadAll(gctx, lk.companies, companyIDs.keys)
		return wrapLookup("companies", err)
	})
	g.Go(func() (err error) {
		rel.users, err = loadAll(gctx, lk.users, userIDs.keys)
		return wrapLookup("users", err)
	})
	g.Go(func() (err error) {
		rel.posByToken, err = loadAll(gctx, lk.posByToken, tokens.keys)
		return wrapLookup("pos", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rel, nil
}

func wrapLookup(entity string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("lookup %s: %w", entity, err)
}

// join decorates a line with its related entities. Missing entities leave
// their field empty, except the terminal, which every line must have.
func (r *related) join(line domain.OrderLine) (domain.OrderRecord, error) {
	pos := r.posByToken[line.PosToken]
	if pos == nil {
		return domain.OrderRecord{}, fmt.Errorf("pos %q of order %s: %w", line.PosToken, line.ID, domain.ErrNotFound)
	}

	rec := domain.OrderRecord{
		OrderHeader: line.OrderHeader,
		OrderID:     line.ID,
		Branch:      r.branches[line.BranchID],
		Department:  r.departments[line.DepartmentID],
		User:        r.users[line.UserID],
		Customer:    r.customer(line.OrderHeader),
		PosName:     pos.Name,
	}
	rec.ID = line.RecordID()

	item := domain.RecordItem{OrderItem: line.Item}
	if p := r.products[line.Item.ProductID]; p != nil {
		item.Product = *p
		item.ProductCategory = r.categories[p.CategoryID]
	}
	if code := line.Item.ManufacturedDate; code != "" {
		if t, err := domain.ManufacturedDateCodec.Decode(code); err == nil {
			item.Manufactured = &t
		}
	}
	rec.Items = item

	return rec, nil
}

// customer projects the order's customer, company or user into the
// customer shape. Nil when the referenced entity was not found.
func (r *related) customer(h domain.OrderHeader) *domain.CustomerView {
	switch h.CustomerType.Effective() {
	case domain.CustomerTypeCompany:
		if c := r.companies[h.CustomerID]; c != nil {
			return domain.CustomerViewFromCompany(*c)
		}
	case domain.CustomerTypeUser:
		if u := r.users[h.CustomerID]; u != nil {
			return domain.CustomerViewFromUser(*u)
		}
	case domain.CustomerTypeCustomer:
		if c := r.customers[h.CustomerID]; c != nil {
			return domain.CustomerViewFromCustomer(*c)
		}
	}
	return nil
}
