// Package middleware holds the HTTP middleware shared by every endpoint:
// request ids, tenant resolution, panic recovery, access logs and caller
// authentication.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler
