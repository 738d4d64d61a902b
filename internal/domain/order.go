package domain

import "time"

// OrderHeader holds the order-level fields shared by whole orders and their
// unwound line items.
type OrderHeader struct {
	ID               string            `bson:"_id" json:"_id"`
	Number           string            `bson:"number,omitempty" json:"number,omitempty"`
	Origin           string            `bson:"origin,omitempty" json:"origin,omitempty"`
	Status           string            `bson:"status,omitempty" json:"status,omitempty"`
	Type             string            `bson:"type,omitempty" json:"type,omitempty"`
	PosToken         string            `bson:"posToken,omitempty" json:"posToken,omitempty"`
	CustomerID       string            `bson:"customerId,omitempty" json:"customerId,omitempty"`
	CustomerType     CustomerType      `bson:"customerType,omitempty" json:"customerType,omitempty"`
	UserID           string            `bson:"userId,omitempty" json:"userId,omitempty"`
	BranchID         string            `bson:"branchId,omitempty" json:"branchId,omitempty"`
	DepartmentID     string            `bson:"departmentId,omitempty" json:"departmentId,omitempty"`
	CashAmount       float64           `bson:"cashAmount" json:"cashAmount"`
	MobileAmount     float64           `bson:"mobileAmount" json:"mobileAmount"`
	TotalAmount      float64           `bson:"totalAmount" json:"totalAmount"`
	FinalAmount      float64           `bson:"finalAmount" json:"finalAmount"`
	PaidAmounts      []PaidAmount      `bson:"paidAmounts,omitempty" json:"paidAmounts,omitempty"`
	PaidDate         *time.Time        `bson:"paidDate,omitempty" json:"paidDate,omitempty"`
	CreatedAt        time.Time         `bson:"createdAt" json:"createdAt"`
	SubscriptionInfo *SubscriptionInfo `bson:"subscriptionInfo,omitempty" json:"subscriptionInfo,omitempty"`
}

// Order is a POS order document.
type Order struct {
	OrderHeader `bson:",inline"`
	Items       []OrderItem `bson:"items,omitempty" json:"items"`
}

// OrderItem is one product entry within an order.
type OrderItem struct {
	ID               string     `bson:"_id" json:"_id"`
	ProductID        string     `bson:"productId,omitempty" json:"productId,omitempty"`
	Count            float64    `bson:"count" json:"count"`
	UnitPrice        float64    `bson:"unitPrice" json:"unitPrice"`
	ManufacturedDate string     `bson:"manufacturedDate,omitempty" json:"manufacturedDate,omitempty"`
	CloseDate        *time.Time `bson:"closeDate,omitempty" json:"closeDate,omitempty"`
	CreatedAt        *time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`

	// ProductName is filled in by order detail lookups only.
	ProductName string `bson:"-" json:"productName,omitempty"`
}

// PaidAmount is one itemized payment of an order.
type PaidAmount struct {
	ID     string  `bson:"_id,omitempty" json:"_id,omitempty"`
	Type   string  `bson:"type" json:"type"`
	Amount float64 `bson:"amount" json:"amount"`
}

// SubscriptionInfo links an order to a recurring subscription.
type SubscriptionInfo struct {
	SubscriptionID string             `bson:"subscriptionId,omitempty" json:"subscriptionId,omitempty"`
	Status         SubscriptionStatus `bson:"status,omitempty" json:"status,omitempty"`
}

// OrderLine is an order unwound to a single line item.
type OrderLine struct {
	OrderHeader `bson:",inline"`
	Item        OrderItem `bson:"items"`
}

// RecordID returns the synthetic identifier of the line, unique across a
// flattened result set.
func (l OrderLine) RecordID() string {
	return l.ID + "_" + l.Item.ID
}

// OrderRecord is an order line decorated with its related entities.
type OrderRecord struct {
	OrderHeader
	OrderID    string        `json:"orderId"`
	Items      RecordItem    `json:"items"`
	Branch     *Branch       `json:"branch,omitempty"`
	Department *Department   `json:"department,omitempty"`
	User       *User         `json:"user,omitempty"`
	Customer   *CustomerView `json:"customer,omitempty"`
	PosName    string        `json:"posName"`
}

// RecordItem is the line item of an OrderRecord with product enrichment.
type RecordItem struct {
	OrderItem
	Product         Product          `json:"product"`
	ProductCategory *ProductCategory `json:"productCategory,omitempty"`
	Manufactured    *time.Time       `json:"manufactured,omitempty"`
}

// CustomerOrders groups orders by customer.
type CustomerOrders struct {
	ID           string       `bson:"_id" json:"_id"`
	CustomerType CustomerType `bson:"customerType,omitempty" json:"customerType,omitempty"`
	Orders       []Order      `bson:"orders" json:"orders"`
	TotalOrders  int          `bson:"totalOrders" json:"totalOrders"`
	TotalAmount  float64      `bson:"totalAmount" json:"totalAmount"`
}

// SubscriptionGroup groups unwound subscription orders by subscription id.
type SubscriptionGroup struct {
	ID           string             `bson:"_id" json:"_id"`
	CustomerID   string             `bson:"customerId" json:"customerId"`
	CustomerType CustomerType       `bson:"customerType,omitempty" json:"customerType,omitempty"`
	Status       SubscriptionStatus `bson:"status,omitempty" json:"status,omitempty"`
	CloseDate    *time.Time         `bson:"closeDate,omitempty" json:"closeDate,omitempty"`
	CreatedAt    *time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	Orders       []OrderLine        `bson:"orders" json:"orders"`
}

// ProductSales is a product decorated with per-hour sale figures.
type ProductSales struct {
	Product
	Counts map[int]float64 `json:"counts"`
	Count  float64         `json:"count"`
	Amount float64         `json:"amount"`
}

// ProductHourSales is one (product, hour) aggregation bucket.
type ProductHourSales struct {
	ProductID string
	Hour      int
	Count     float64
	Amount    float64
}
