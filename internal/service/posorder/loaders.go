package posorder

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

// wait is how long a loader collects keys before issuing its batch. Batch
// capacity is unbounded so every entity type costs one call per request.
const wait = 2 * time.Millisecond

// lookups holds per-request loaders for entities owned by other services.
// Every loader resolves a missing key to nil, never to an error.
type lookups struct {
	branches    *dataloader.Loader[string, *domain.Branch]
	departments *dataloader.Loader[string, *domain.Department]
	products    *dataloader.Loader[string, *domain.Product]
	categories  *dataloader.Loader[string, *domain.ProductCategory]
	customers   *dataloader.Loader[string, *domain.Customer]
	companies   *dataloader.Loader[string, *domain.Company]
	users       *dataloader.Loader[string, *domain.User]
	posByToken  *dataloader.Loader[string, *domain.Pos]
}

func (s *Service) newLookups() *lookups {
	return &lookups{
		branches:    newLoader(byKey(s.core.FindBranches, func(b domain.Branch) string { return b.ID })),
		departments: newLoader(byKey(s.core.FindDepartments, func(d domain.Department) string { return d.ID })),
		products:    newLoader(byKey(s.core.FindProducts, func(p domain.Product) string { return p.ID })),
		categories:  newLoader(byKey(s.core.FindCategories, func(c domain.ProductCategory) string { return c.ID })),
		customers:   newLoader(byKey(s.core.FindCustomers, func(c domain.Customer) string { return c.ID })),
		companies:   newLoader(byKey(s.core.FindCompanies, func(c domain.Company) string { return c.ID })),
		users:       newLoader(byKey(s.core.FindUsers, func(u domain.User) string { return u.ID })),
		posByToken:  newLoader(byKey(s.pos.FindByTokens, func(p domain.Pos) string { return p.Token })),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
	)
}

// byKey adapts a batched "find by ids" call into a batch function. Results
// are matched to keys with key; keys without a match resolve to nil.
func byKey[T any](
	fetch func(ctx context.Context, ids []string) ([]T, error),
	key func(T) string,
) dataloader.BatchFunc[string, *T] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*T] {
		items, err := fetch(ctx, keys)
		if err != nil {
			return errorResults[*T](len(keys), err)
		}

		byID := make(map[string]*T, len(items))
		for i := range items {
			byID[key(items[i])] = &items[i]
		}

		results := make([]*dataloader.Result[*T], len(keys))
		for i, k := range keys {
			results[i] = &dataloader.Result[*T]{Data: byID[k]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// loadAll resolves keys through l and returns the non-nil values by key.
func loadAll[V any](ctx context.Context, l *dataloader.Loader[string, *V], keys []string) (map[string]*V, error) {
	out := make(map[string]*V, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	values, errs := l.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	for i, v := range values {
		if v != nil {
			out[keys[i]] = v
		}
	}
	return out, nil
}

// keySet collects distinct non-empty keys in first-seen order.
type keySet struct {
	seen map[string]struct{}
	keys []string
}

func (k *keySet) add(key string) {
	if key == "" {
		return
	}
	if k.seen == nil {
		k.seen = make(map[string]struct{})
	}
	if _, ok := k.seen[key]; ok {
		return
	}
	k.seen[key] = struct{}{}
	k.keys = append(k.keys, key)
}
