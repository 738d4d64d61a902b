package broker

import (
	"context"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

const coreService = "core"

func inIDs(ids []string) map[string]any {
	return map[string]any{"_id": map[string]any{"$in": nonNil(ids)}}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Core calls entity lookups owned by the core service. Each method issues a
// single batched call.
type Core struct {
	c *Client
}

// NewCore wraps a broker client.
func NewCore(c *Client) *Core {
	return &Core{c: c}
}

// FindBranches calls branches.find.
func (k *Core) FindBranches(ctx context.Context, ids []string) ([]domain.Branch, error) {
	out := []domain.Branch{}
	err := k.c.Call(ctx, coreService, "branches.find", map[string]any{"query": inIDs(ids)}, &out)
	return out, err
}

// FindDepartments calls departments.find.
func (k *Core) FindDepartments(ctx context.Context, ids []string) ([]domain.Department, error) {
	out := []domain.Department{}
	err := k.c.Call(ctx, coreService, "departments.find", inIDs(ids), &out)
	return out, err
}

// FindProducts calls products.find for the given ids.
func (k *Core) FindProducts(ctx context.Context, ids []string) ([]domain.Product, error) {
	out := []domain.Product{}
	err := k.c.Call(ctx, coreService, "products.find", map[string]any{
		"query": inIDs(ids),
		"limit": len(ids),
	}, &out)
	return out, err
}

// FindCategories calls categories.find for the given ids.
func (k *Core) FindCategories(ctx context.Context, ids []string) ([]domain.ProductCategory, error) {
	out := []domain.ProductCategory{}
	err := k.c.Call(ctx, coreService, "categories.find", map[string]any{"query": inIDs(ids)}, &out)
	return out, err
}

// FindCustomers calls customers.find.
func (k *Core) FindCustomers(ctx context.Context, ids []string) ([]domain.Customer, error) {
	out := []domain.Customer{}
	err := k.c.Call(ctx, coreService, "customers.find", inIDs(ids), &out)
	return out, err
}

// FindCompanies calls companies.find.
func (k *Core) FindCompanies(ctx context.Context, ids []string) ([]domain.Company, error) {
	out := []domain.Company{}
	err := k.c.Call(ctx, coreService, "companies.find", inIDs(ids), &out)
	return out, err
}

// FindUsers calls users.find.
func (k *Core) FindUsers(ctx context.Context, ids []string) ([]domain.User, error) {
	out := []domain.User{}
	err := k.c.Call(ctx, coreService, "users.find", map[string]any{"query": inIDs(ids)}, &out)
	return out, err
}

// ActiveCategory calls categories.findOne for an active or status-less
// category. A missing category yields the zero value.
func (k *Core) ActiveCategory(ctx context.Context, id string) (domain.ProductCategory, error) {
	var out domain.ProductCategory
	err := k.c.Call(ctx, coreService, "categories.findOne", map[string]any{
		"_id":    id,
		"status": map[string]any{"$in": []any{nil, domain.ProductCategoryActive}},
	}, &out)
	return out, err
}

// CategorySubtree calls categories.find with the order prefix of a category,
// returning it and its descendants.
func (k *Core) CategorySubtree(ctx context.Context, order string) ([]domain.ProductCategory, error) {
	out := []domain.ProductCategory{}
	err := k.c.Call(ctx, coreService, "categories.find", map[string]any{"regData": order}, &out)
	return out, err
}

// SearchProducts calls products.find with a product query.
func (k *Core) SearchProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	out := []domain.Product{}
	err := k.c.Call(ctx, coreService, "products.find", map[string]any{
		"query": productSelector(q),
		"sort":  map[string]any{},
		"skip":  q.Skip,
		"limit": q.Limit,
	}, &out)
	return out, err
}

// CountProducts calls products.count with a product query.
func (k *Core) CountProducts(ctx context.Context, q domain.ProductQuery) (int64, error) {
	var out int64
	err := k.c.Call(ctx, coreService, "products.count", map[string]any{"query": productSelector(q)}, &out)
	return out, err
}

// ProductIDsByCategories calls products.find for the products of categories.
func (k *Core) ProductIDsByCategories(ctx context.Context, categoryIDs []string) ([]string, error) {
	var products []domain.Product
	err := k.c.Call(ctx, coreService, "products.find", map[string]any{
		"categoryIds": nonNil(categoryIDs),
		"fields":      map[string]any{"_id": 1},
	}, &products)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// FilterConformity calls conformities.filterConformity, returning the ids of
// relType items related to the given mainType items.
func (k *Core) FilterConformity(ctx context.Context, mainType string, mainTypeIDs []string, relType string) ([]string, error) {
	out := []string{}
	err := k.c.Call(ctx, coreService, "conformities.filterConformity", map[string]any{
		"mainType":    mainType,
		"mainTypeIds": nonNil(mainTypeIDs),
		"relType":     relType,
	}, &out)
	return out, err
}

func productSelector(q domain.ProductQuery) map[string]any {
	sel := map[string]any{}
	if q.FilterByCategory {
		sel["categoryId"] = map[string]any{"$in": nonNil(q.CategoryIDs)}
	}
	if q.SearchPattern != "" {
		match := map[string]any{"$regex": q.SearchPattern, "$options": "i"}
		sel["$or"] = []any{
			map[string]any{"name": match},
			map[string]any{"code": match},
		}
	}
	return sel
}
