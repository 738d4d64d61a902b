package order

import (
	"maps"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

// toSelector translates a normalized order filter into a store selector.
func toSelector(f domain.OrderFilter) bson.M {
	q := bson.M{}
	maps.Copy(q, f.Scope)

	if f.SearchPattern != "" {
		search := bson.A{
			bson.M{"number": bson.M{"$regex": f.SearchPattern}},
			bson.M{"origin": bson.M{"$regex": f.SearchPattern}},
		}
		if scopeOr, ok := q["$or"]; ok {
			delete(q, "$or")
			q["$and"] = bson.A{bson.M{"$or": scopeOr}, bson.M{"$or": search}}
		} else {
			q["$or"] = search
		}
	}

	if f.CustomerID != "" {
		q["customerId"] = f.CustomerID
	}

	if f.CustomerType != "" {
		if f.CustomerType == domain.CustomerTypeCustomer {
			// Matches a missing field as well as an explicit null.
			q["customerType"] = bson.M{"$in": bson.A{string(domain.CustomerTypeCustomer), "", nil}}
		} else {
			q["customerType"] = string(f.CustomerType)
		}
	}

	if f.HasStatusFilter() {
		status := bson.M{"$nin": nonNil(f.ExcludeStatuses)}
		if len(f.Statuses) > 0 {
			status["$in"] = f.Statuses
		}
		q["status"] = status
	}

	if f.Pos != nil {
		if f.Pos.Token == "" {
			q["posToken"] = bson.M{"$in": bson.A{}}
		} else {
			q["posToken"] = f.Pos.Token
		}
	}

	if f.UserID != nil {
		q["userId"] = *f.UserID
	}

	if f.PaidDateExists {
		q["paidDate"] = bson.M{"$exists": true}
	} else if f.PaidDate != nil {
		q["paidDate"] = rangeSelector(*f.PaidDate)
	}

	if f.CreatedAt != nil {
		q["createdAt"] = rangeSelector(*f.CreatedAt)
	}

	if len(f.Types) > 0 {
		q["type"] = bson.M{"$in": f.Types}
	}

	return q
}

func rangeSelector(r domain.TimeRange) bson.M {
	m := bson.M{}
	if r.From != nil {
		m["$gte"] = *r.From
	}
	if r.Until != nil {
		m["$lt"] = *r.Until
	}
	return m
}

func subscriptionSelector(f domain.SubscriptionFilter) bson.M {
	q := bson.M{
		"subscriptionInfo.subscriptionId": bson.M{"$nin": bson.A{nil, ""}},
		"customerId":                      bson.M{"$nin": bson.A{nil, ""}},
	}
	if f.CustomerID != "" {
		q["customerId"] = f.CustomerID
	}
	if f.Status != "" {
		q["subscriptionInfo.status"] = string(f.Status)
	}
	if f.CloseFrom != nil || f.CloseTo != nil {
		closeDate := bson.M{}
		if f.CloseFrom != nil {
			closeDate["$gte"] = *f.CloseFrom
		}
		if f.CloseTo != nil {
			closeDate["$lte"] = *f.CloseTo
		}
		q["items.closeDate"] = closeDate
	}
	return q
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
