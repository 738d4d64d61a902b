package domain

// CustomerType discriminates which entity an order's customerId refers to.
type CustomerType string

const (
	CustomerTypeCustomer CustomerType = "customer"
	CustomerTypeCompany  CustomerType = "company"
	CustomerTypeUser     CustomerType = "user"
)

func (c CustomerType) String() string { return string(c) }

func (c CustomerType) IsValid() bool {
	switch c {
	case CustomerTypeCustomer, CustomerTypeCompany, CustomerTypeUser:
		return true
	}
	return false
}

// Effective returns the customer type an order is treated as. Orders created
// before the field existed carry an empty value and count as customers.
func (c CustomerType) Effective() CustomerType {
	if c == "" {
		return CustomerTypeCustomer
	}
	return c
}

// GroupField selects the bucketing granularity of a grouped summary.
type GroupField string

const (
	GroupFieldNone GroupField = ""
	GroupFieldDate GroupField = "date"
	GroupFieldTime GroupField = "time"
)

func (g GroupField) String() string { return string(g) }

func (g GroupField) IsValid() bool {
	switch g {
	case GroupFieldNone, GroupFieldDate, GroupFieldTime:
		return true
	}
	return false
}

// DateFormat returns the store-side date format used for bucketing, or an
// empty string when orders are not bucketed.
func (g GroupField) DateFormat() string {
	switch g {
	case GroupFieldDate:
		return "%Y-%m-%d"
	case GroupFieldTime:
		return "%Y-%m-%d %H"
	}
	return ""
}

// SubscriptionStatus of an order's subscription info.
type SubscriptionStatus string

const (
	SubscriptionStatusActive SubscriptionStatus = "active"
	SubscriptionStatusDone   SubscriptionStatus = "done"
)

// Activity type and content type tags shared between the activity sources.
const (
	ActivityTypeAll          = "activity"
	CoreServiceName          = "core"
	InternalNoteSubtype      = "internalNote"
	InternalNoteContentType  = "core:internalNote"
	ActionDelete             = "delete"
	ProductStatusDeleted     = "deleted"
	ProductCategoryActive    = "active"
	SegmentsStatusSuccess    = "success"
	SegmentsStatusError      = "error"
	DefaultPage              = 1
	DefaultListPerPage       = 100
	DefaultRecordsPerPage    = 20
	DefaultActivityPerPage   = 10
	DefaultSubscriptionLimit = 20
)
