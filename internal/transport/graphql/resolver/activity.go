package resolver

import (
	"github.com/heartmarshall/crmhub-backend/internal/service/activity"
	"github.com/heartmarshall/crmhub-backend/internal/transport/graphql"
)

func (r *Resolver) activityOperations() map[string]graphql.ResolveFunc {
	return map[string]graphql.ResolveFunc{
		"activityLogs":         op(r.activity.List),
		"activityLogsByAction": op(r.activity.ByAction),
	}
}

var _ activityService = (*activity.Service)(nil)
