package domain

import "time"

// Selector is a store-level predicate supplied by the caller's access scope.
// It is merged verbatim into order filters.
type Selector map[string]any

// TimeRange is a half-open interval [From, Until). A nil bound is open.
type TimeRange struct {
	From  *time.Time
	Until *time.Time
}

// PosSelector restricts orders to one terminal. An empty Token is an
// unresolved reference and matches no order.
type PosSelector struct {
	Token string
}

// OrderFilter is the normalized predicate over POS orders.
type OrderFilter struct {
	Scope           Selector
	SearchPattern   string
	CustomerID      string
	CustomerType    CustomerType
	Statuses        []string
	ExcludeStatuses []string
	Pos             *PosSelector
	UserID          *string
	PaidDate        *TimeRange
	PaidDateExists  bool
	CreatedAt       *TimeRange
	Types           []string
}

// IsEmpty reports whether no constraint at all is set, scope included.
func (f OrderFilter) IsEmpty() bool {
	return len(f.Scope) == 0 &&
		f.SearchPattern == "" &&
		f.CustomerID == "" &&
		f.CustomerType == "" &&
		!f.HasStatusFilter() &&
		f.Pos == nil &&
		f.UserID == nil &&
		f.PaidDate == nil &&
		!f.PaidDateExists &&
		f.CreatedAt == nil &&
		len(f.Types) == 0
}

// HasStatusFilter reports whether an include or exclude status list is set.
func (f OrderFilter) HasStatusFilter() bool {
	return len(f.Statuses) > 0 || len(f.ExcludeStatuses) > 0
}

// CustomerTypes returns the stored customerType values accepted by the
// filter. Customers also match orders that predate the field.
func (f OrderFilter) CustomerTypes() []CustomerType {
	if f.CustomerType == "" {
		return nil
	}
	if f.CustomerType == CustomerTypeCustomer {
		return []CustomerType{CustomerTypeCustomer, ""}
	}
	return []CustomerType{f.CustomerType}
}

// SubscriptionFilter narrows subscription order listings.
type SubscriptionFilter struct {
	CustomerID string
	Status     SubscriptionStatus
	CloseFrom  *time.Time // inclusive
	CloseTo    *time.Time // inclusive
}

// ActiveSubscriptionQuery finds the newest active subscription order of a
// customer for one of the given products whose item closes at or after Now.
type ActiveSubscriptionQuery struct {
	CustomerID string
	ProductIDs []string
	Now        time.Time
}

// ProductQuery filters the remote product list of a POS product report.
type ProductQuery struct {
	CategoryIDs      []string
	FilterByCategory bool
	SearchPattern    string
	Skip             int
	Limit            int
}

// SortSpec orders a listing by a single field. Direction is 1 or -1.
type SortSpec struct {
	Field     string
	Direction int
}

// Page is a 1-indexed page request.
type Page struct {
	Page    int
	PerPage int
}

// Skip returns the number of items preceding the page.
func (p Page) Skip() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}
