// Package order implements POS order queries and aggregations on the
// document store.
package order

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/crmhub-backend/internal/adapter/mongodb"
	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

// Repo reads POS orders. Date bucketing is done in loc.
type Repo struct {
	orders *mongo.Collection
	loc    *time.Location
}

// New creates a new order repository.
func New(db *mongo.Database, loc *time.Location) *Repo {
	if loc == nil {
		loc = time.UTC
	}
	return &Repo{orders: db.Collection(mongodb.CollectionPosOrders), loc: loc}
}

// ---------------------------------------------------------------------------
// Order listings
// ---------------------------------------------------------------------------

// Find returns one page of whole orders.
func (r *Repo) Find(ctx context.Context, f domain.OrderFilter, sort domain.SortSpec, page domain.Page) ([]domain.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: sort.Field, Value: sort.Direction}}).
		SetSkip(int64(page.Skip())).
		SetLimit(int64(page.PerPage))

	cur, err := r.orders.Find(ctx, toSelector(f), opts)
	if err != nil {
		return nil, fmt.Errorf("find pos orders: %w", err)
	}

	orders := make([]domain.Order, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode pos orders: %w", err)
	}
	return orders, nil
}

// Count returns the number of orders matching f.
func (r *Repo) Count(ctx context.Context, f domain.OrderFilter) (int64, error) {
	n, err := r.orders.CountDocuments(ctx, toSelector(f))
	if err != nil {
		return 0, fmt.Errorf("count pos orders: %w", err)
	}
	return n, nil
}

// GetByID returns a single order.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	if err := r.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return nil, mongodb.MapError(err, "pos order", id)
	}
	return &o, nil
}

// ---------------------------------------------------------------------------
// Line items
// ---------------------------------------------------------------------------

// Lines returns one page of orders unwound to line items, newest first.
func (r *Repo) Lines(ctx context.Context, f domain.OrderFilter, page domain.Page) ([]domain.OrderLine, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: toSelector(f)}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: int64(page.Skip())}},
		{{Key: "$limit", Value: int64(page.PerPage)}},
	}

	lines := make([]domain.OrderLine, 0)
	if err := r.aggregate(ctx, pipeline, &lines); err != nil {
		return nil, fmt.Errorf("order lines: %w", err)
	}
	return lines, nil
}

// CountLines returns the number of line items across orders matching f.
func (r *Repo) CountLines(ctx context.Context, f domain.OrderFilter) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: toSelector(f)}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$count", Value: "count"}},
	}
	n, err := r.count(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("count order lines: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Summaries
// ---------------------------------------------------------------------------

// AmountTotals sums order amounts per paid-date bucket.
func (r *Repo) AmountTotals(ctx context.Context, f domain.OrderFilter, group domain.GroupField) ([]domain.AmountTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: toSelector(f)}},
		{{Key: "$project", Value: bson.D{
			{Key: "paidDate", Value: "$paidDate"},
			{Key: "cashAmount", Value: "$cashAmount"},
			{Key: "mobileAmount", Value: "$mobileAmount"},
			{Key: "totalAmount", Value: "$totalAmount"},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: r.groupKey(group)},
			{Key: "cashAmount", Value: bson.M{"$sum": "$cashAmount"}},
			{Key: "mobileAmount", Value: bson.M{"$sum": "$mobileAmount"}},
			{Key: "totalAmount", Value: bson.M{"$sum": "$totalAmount"}},
			{Key: "count", Value: bson.M{"$sum": 1}},
		}}},
	}

	var rows []struct {
		Group        string  `bson:"_id"`
		CashAmount   float64 `bson:"cashAmount"`
		MobileAmount float64 `bson:"mobileAmount"`
		TotalAmount  float64 `bson:"totalAmount"`
		Count        float64 `bson:"count"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, fmt.Errorf("order amount totals: %w", err)
	}

	out := make([]domain.AmountTotals, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AmountTotals{
			Group:        row.Group,
			CashAmount:   row.CashAmount,
			MobileAmount: row.MobileAmount,
			TotalAmount:  row.TotalAmount,
			Count:        row.Count,
		})
	}
	return out, nil
}

// PaymentTotals sums itemized payments per bucket and payment type, joined
// with the payment type titles configured on each order's POS.
func (r *Repo) PaymentTotals(ctx context.Context, f domain.OrderFilter, group domain.GroupField) ([]domain.PaymentTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: toSelector(f)}},
		{{Key: "$unwind", Value: "$paidAmounts"}},
		{{Key: "$project", Value: bson.D{
			{Key: "paidDate", Value: "$paidDate"},
			{Key: "type", Value: "$paidAmounts.type"},
			{Key: "amount", Value: "$paidAmounts.amount"},
			{Key: "token", Value: "$posToken"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: mongodb.CollectionPos},
			{Key: "let", Value: bson.D{
				{Key: "letToken", Value: "$token"},
				{Key: "letType", Value: "$type"},
			}},
			{Key: "pipeline", Value: mongo.Pipeline{
				{{Key: "$match", Value: bson.M{"$expr": bson.M{"$eq": bson.A{"$token", "$$letToken"}}}}},
				{{Key: "$unwind", Value: "$paymentTypes"}},
				{{Key: "$project", Value: bson.D{
					{Key: "type", Value: "$paymentTypes.type"},
					{Key: "title", Value: "$paymentTypes.title"},
				}}},
				{{Key: "$match", Value: bson.M{"$expr": bson.M{"$eq": bson.A{"$type", "$$letType"}}}}},
			}},
			{Key: "as", Value: "paymentInfo"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$paymentInfo"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "group", Value: r.groupKey(group)},
				{Key: "type", Value: "$type"},
				{Key: "title", Value: "$paymentInfo.title"},
			}},
			{Key: "amount", Value: bson.M{"$sum": "$amount"}},
		}}},
	}

	var rows []struct {
		ID struct {
			Group string `bson:"group"`
			Type  string `bson:"type"`
			Title string `bson:"title"`
		} `bson:"_id"`
		Amount float64 `bson:"amount"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, fmt.Errorf("order payment totals: %w", err)
	}

	out := make([]domain.PaymentTotals, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.PaymentTotals{
			Group:  row.ID.Group,
			Type:   row.ID.Type,
			Title:  row.ID.Title,
			Amount: row.Amount,
		})
	}
	return out, nil
}

// groupKey returns the bucket expression: the formatted paid date in the
// repository location, or a constant when not bucketing.
func (r *Repo) groupKey(group domain.GroupField) any {
	format := group.DateFormat()
	if format == "" {
		return ""
	}
	return bson.M{"$dateToString": bson.D{
		{Key: "format", Value: format},
		{Key: "date", Value: "$paidDate"},
		{Key: "timezone", Value: r.loc.String()},
	}}
}

// ---------------------------------------------------------------------------
// Product sales
// ---------------------------------------------------------------------------

// ProductHourSales sums sold counts and amounts per product and hour of the
// paid date, restricted to productIDs.
func (r *Repo) ProductHourSales(ctx context.Context, f domain.OrderFilter, productIDs []string) ([]domain.ProductHourSales, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: toSelector(f)}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$match", Value: bson.M{"items.productId": bson.M{"$in": nonNil(productIDs)}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "productId", Value: "$items.productId"},
			{Key: "count", Value: "$items.count"},
			{Key: "date", Value: "$paidDate"},
			{Key: "amount", Value: bson.M{"$multiply": bson.A{"$items.unitPrice", "$items.count"}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "productId", Value: "$productId"},
				{Key: "hour", Value: bson.M{"$hour": bson.D{
					{Key: "date", Value: "$date"},
					{Key: "timezone", Value: r.loc.String()},
				}}},
			}},
			{Key: "count", Value: bson.M{"$sum": "$count"}},
			{Key: "amount", Value: bson.M{"$sum": "$amount"}},
		}}},
	}

	var rows []struct {
		ID struct {
			ProductID string `bson:"productId"`
			Hour      int    `bson:"hour"`
		} `bson:"_id"`
		Count  float64 `bson:"count"`
		Amount float64 `bson:"amount"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, fmt.Errorf("product hour sales: %w", err)
	}

	out := make([]domain.ProductHourSales, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ProductHourSales{
			ProductID: row.ID.ProductID,
			Hour:      row.ID.Hour,
			Count:     row.Count,
			Amount:    row.Amount,
		})
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Customers
// ---------------------------------------------------------------------------

var hasCustomer = bson.M{"customerId": bson.M{"$nin": bson.A{nil, ""}}}

// Customers groups orders by customer, highest customer id first.
func (r *Repo) Customers(ctx context.Context, page domain.Page) ([]domain.CustomerOrders, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: hasCustomer}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$customerId"},
			{Key: "customerType", Value: bson.M{"$first": "$customerType"}},
			{Key: "orders", Value: bson.M{"$push": "$$ROOT"}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "customerType", Value: 1},
			{Key: "orders", Value: 1},
			{Key: "totalOrders", Value: bson.M{"$size": "$orders"}},
			{Key: "totalAmount", Value: bson.M{"$sum": "$orders.totalAmount"}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		{{Key: "$skip", Value: int64(page.Skip())}},
		{{Key: "$limit", Value: int64(page.PerPage)}},
	}

	groups := make([]domain.CustomerOrders, 0)
	if err := r.aggregate(ctx, pipeline, &groups); err != nil {
		return nil, fmt.Errorf("order customers: %w", err)
	}
	return groups, nil
}

// CountCustomers returns the number of distinct customers with orders.
func (r *Repo) CountCustomers(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: hasCustomer}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$customerId"}}}},
		{{Key: "$count", Value: "count"}},
	}
	n, err := r.count(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("count order customers: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Subscriptions
// ---------------------------------------------------------------------------

// FindActiveSubscription returns the newest matching subscription order.
func (r *Repo) FindActiveSubscription(ctx context.Context, q domain.ActiveSubscriptionQuery) (*domain.Order, error) {
	selector := bson.M{
		"customerId":              q.CustomerID,
		"items.productId":         bson.M{"$in": nonNil(q.ProductIDs)},
		"subscriptionInfo.status": string(domain.SubscriptionStatusActive),
		"items.closeDate":         bson.M{"$gte": q.Now},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var o domain.Order
	if err := r.orders.FindOne(ctx, selector, opts).Decode(&o); err != nil {
		return nil, mongodb.MapError(err, "subscription of customer", q.CustomerID)
	}
	return &o, nil
}

// SubscriptionGroups groups subscription line items by subscription id,
// newest subscription first.
func (r *Repo) SubscriptionGroups(ctx context.Context, f domain.SubscriptionFilter, page domain.Page) ([]domain.SubscriptionGroup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: subscriptionSelector(f)}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$sort", Value: bson.D{
			{Key: "createdAt", Value: -1},
			{Key: "items.closeDate", Value: -1},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$subscriptionInfo.subscriptionId"},
			{Key: "customerId", Value: bson.M{"$first": "$customerId"}},
			{Key: "customerType", Value: bson.M{"$first": "$customerType"}},
			{Key: "status", Value: bson.M{"$first": "$subscriptionInfo.status"}},
			{Key: "closeDate", Value: bson.M{"$first": "$items.closeDate"}},
			{Key: "createdAt", Value: bson.M{"$first": "$items.createdAt"}},
			{Key: "orders", Value: bson.M{"$push": bson.M{"$cond": bson.D{
				{Key: "if", Value: bson.M{"$ne": bson.A{bson.M{"$ifNull": bson.A{"$items.closeDate", nil}}, nil}}},
				{Key: "then", Value: "$$ROOT"},
				{Key: "else", Value: "$$REMOVE"},
			}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$skip", Value: int64(page.Skip())}},
		{{Key: "$limit", Value: int64(page.PerPage)}},
	}

	groups := make([]domain.SubscriptionGroup, 0)
	if err := r.aggregate(ctx, pipeline, &groups); err != nil {
		return nil, fmt.Errorf("subscription groups: %w", err)
	}
	return groups, nil
}

// CountSubscriptionGroups returns the number of distinct subscriptions.
func (r *Repo) CountSubscriptionGroups(ctx context.Context, f domain.SubscriptionFilter) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: subscriptionSelector(f)}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$subscriptionInfo.subscriptionId"}}}},
		{{Key: "$count", Value: "count"}},
	}
	n, err := r.count(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("count subscription groups: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (r *Repo) aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cur, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// count runs a pipeline ending in {$count: "count"}. An empty result means
// zero.
func (r *Repo) count(ctx context.Context, pipeline mongo.Pipeline) (int64, error) {
	var rows []struct {
		Count int64 `bson:"count"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Count, nil
}
