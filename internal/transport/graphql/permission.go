package graphql

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/pkg/ctxutil"
)

// Permission names checked by operations.
const (
	PermShowOrders = "showOrders"
)

// PermissionChecker decides whether the caller in ctx may perform action.
type PermissionChecker interface {
	Check(ctx context.Context, action string) error
}

// AllowAll grants every action to every caller.
type AllowAll struct{}

func (AllowAll) Check(context.Context, string) error { return nil }

// ClaimsChecker grants the actions listed in the caller's token claims.
type ClaimsChecker struct{}

func (ClaimsChecker) Check(ctx context.Context, action string) error {
	if !slices.Contains(ctxutil.PermissionsFromCtx(ctx), action) {
		return fmt.Errorf("%w: permission %q required", domain.ErrForbidden, action)
	}
	return nil
}
