package domain

// Pos is a point-of-sale terminal configuration, addressed by Token in orders.
type Pos struct {
	ID            string        `bson:"_id" json:"_id"`
	Name          string        `bson:"name" json:"name"`
	Token         string        `bson:"token" json:"token"`
	ScopeBrandIDs []string      `bson:"scopeBrandIds,omitempty" json:"scopeBrandIds,omitempty"`
	PaymentTypes  []PaymentType `bson:"paymentTypes,omitempty" json:"paymentTypes,omitempty"`
}

// PaymentType maps a payment type code to its display title.
type PaymentType struct {
	Type  string `bson:"type" json:"type"`
	Title string `bson:"title" json:"title"`
}
