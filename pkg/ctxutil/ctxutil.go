package ctxutil

import (
	"context"
	"maps"
)

type ctxKey string

const (
	userIDKey      ctxKey = "user_id"
	requestIDKey   ctxKey = "request_id"
	subdomainKey   ctxKey = "subdomain"
	scopeKey       ctxKey = "scope"
	permissionsKey ctxKey = "permissions"
)

// WithUserID stores the caller's user ID in the context.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the caller's user ID from the context.
// Returns "" and false if the value is missing, empty, or of the wrong type.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithSubdomain stores the tenant subdomain in the context.
func WithSubdomain(ctx context.Context, subdomain string) context.Context {
	return context.WithValue(ctx, subdomainKey, subdomain)
}

// SubdomainFromCtx extracts the tenant subdomain from the context.
// Returns an empty string if absent.
func SubdomainFromCtx(ctx context.Context) string {
	s, _ := ctx.Value(subdomainKey).(string)
	return s
}

// WithScope stores the caller's access-scope selector in the context.
func WithScope(ctx context.Context, scope map[string]any) context.Context {
	return context.WithValue(ctx, scopeKey, scope)
}

// ScopeFromCtx returns a copy of the caller's access-scope selector, or an
// empty non-nil map when none is set.
func ScopeFromCtx(ctx context.Context) map[string]any {
	scope, _ := ctx.Value(scopeKey).(map[string]any)
	out := make(map[string]any, len(scope))
	maps.Copy(out, scope)
	return out
}

// WithPermissions stores the caller's granted actions in the context.
func WithPermissions(ctx context.Context, actions []string) context.Context {
	return context.WithValue(ctx, permissionsKey, actions)
}

// PermissionsFromCtx returns the caller's granted actions, or nil.
func PermissionsFromCtx(ctx context.Context) []string {
	actions, _ := ctx.Value(permissionsKey).([]string)
	return actions
}
