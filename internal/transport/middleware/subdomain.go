package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/crmhub-backend/pkg/ctxutil"
)

// SubdomainHeader overrides the tenant derived from the host name.
const SubdomainHeader = "X-Subdomain"

const defaultSubdomain = "localhost"

// Subdomain returns middleware that stores the request's tenant subdomain
// in the context: the header value if present, else the first label of the
// host name.
func Subdomain() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxutil.WithSubdomain(r.Context(), subdomainOf(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func subdomainOf(r *http.Request) string {
	if s := strings.TrimSpace(r.Header.Get(SubdomainHeader)); s != "" {
		return s
	}

	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if host == "" || net.ParseIP(host) != nil {
		return defaultSubdomain
	}
	label, _, _ := strings.Cut(host, ".")
	return label
}
