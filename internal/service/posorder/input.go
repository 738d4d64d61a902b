package posorder

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

const (
	userIDMe      = "me"
	userIDNothing = "nothing"
	paidDateToday = "today"
)

const dateLayout = "2006-01-02"

// Date is a calendar-day bound of a filter. It decodes from an RFC 3339
// timestamp or a bare date; a bare date names the day in the POS timezone.
type Date struct {
	time.Time
	bare bool
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		*d = Date{Time: t, bare: true}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	*d = Date{Time: t}
	return nil
}

// day returns the midnight starting d's calendar day in loc.
func (d Date) day(loc *time.Location) time.Time {
	t := d.Time
	if !d.bare {
		t = t.In(loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// FilterInput is the flat parameter bag shared by order queries.
type FilterInput struct {
	Search           string   `json:"search"`
	PaidStartDate    *Date    `json:"paidStartDate"`
	PaidEndDate      *Date    `json:"paidEndDate"`
	CreatedStartDate *Date    `json:"createdStartDate"`
	CreatedEndDate   *Date    `json:"createdEndDate"`
	PaidDate         string   `json:"paidDate"`
	UserID           string   `json:"userId"`
	CustomerID       string   `json:"customerId"`
	CustomerType     string   `json:"customerType" validate:"omitempty,oneof=customer company user"`
	PosID            string   `json:"posId"`
	PosToken         string   `json:"posToken"`
	BrandID          string   `json:"brandId"`
	Types            []string `json:"types"`
	Statuses         []string `json:"statuses"`
	ExcludeStatuses  []string `json:"excludeStatuses"`
	HasPaidDate      bool     `json:"hasPaidDate"`
}

// PageInput is a 1-indexed page request. Zero values select defaults.
type PageInput struct {
	Page    int `json:"page" validate:"min=0"`
	PerPage int `json:"perPage" validate:"min=0,max=1000"`
}

func (p PageInput) resolve(defaultPerPage int) domain.Page {
	page := domain.Page{Page: p.Page, PerPage: p.PerPage}
	if page.Page == 0 {
		page.Page = domain.DefaultPage
	}
	if page.PerPage == 0 {
		page.PerPage = defaultPerPage
	}
	return page
}

// OrdersInput lists whole orders.
type OrdersInput struct {
	FilterInput
	PageInput
	SortField     string `json:"sortField"`
	SortDirection int    `json:"sortDirection" validate:"oneof=-1 0 1"`
}

func (i OrdersInput) sort() domain.SortSpec {
	if i.SortField == "" || i.SortDirection == 0 {
		return domain.SortSpec{Field: "number", Direction: 1}
	}
	return domain.SortSpec{Field: i.SortField, Direction: i.SortDirection}
}

// RecordsInput lists enriched order line items.
type RecordsInput struct {
	FilterInput
	PageInput
}

// GroupSummaryInput requests a bucketed summary.
type GroupSummaryInput struct {
	FilterInput
	GroupField string `json:"groupField" validate:"omitempty,oneof=date time"`
}

// ProductsInput requests the product sales report.
type ProductsInput struct {
	FilterInput
	PageInput
	CategoryID  string `json:"categoryId"`
	SearchValue string `json:"searchValue"`
}

// CustomersInput pages through customers with orders.
type CustomersInput struct {
	PageInput
}

// CheckSubscriptionInput looks up an active subscription of a customer.
// ProductIDs, when set, replaces ProductID.
type CheckSubscriptionInput struct {
	CustomerID string   `json:"customerId" validate:"required"`
	ProductID  string   `json:"productId" validate:"required_without=ProductIDs"`
	ProductIDs []string `json:"productIds"`
}

func (i CheckSubscriptionInput) productIDs() []string {
	if len(i.ProductIDs) > 0 {
		return i.ProductIDs
	}
	return []string{i.ProductID}
}

// SubscriptionsInput lists orders grouped by subscription. CompanyID takes
// precedence over UserID, which takes precedence over CustomerID.
type SubscriptionsInput struct {
	PageInput
	CustomerID string     `json:"customerId"`
	UserID     string     `json:"userId"`
	CompanyID  string     `json:"companyId"`
	Status     string     `json:"status" validate:"omitempty,oneof=active done"`
	CloseFrom  *time.Time `json:"closeFrom"`
	CloseTo    *time.Time `json:"closeTo"`
}

func (i SubscriptionsInput) filter() domain.SubscriptionFilter {
	f := domain.SubscriptionFilter{
		CustomerID: i.CustomerID,
		Status:     domain.SubscriptionStatus(i.Status),
		CloseFrom:  i.CloseFrom,
		CloseTo:    i.CloseTo,
	}
	if i.UserID != "" {
		f.CustomerID = i.UserID
	}
	if i.CompanyID != "" {
		f.CustomerID = i.CompanyID
	}
	return f
}
