package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/crmhub-backend/internal/auth"
	"github.com/heartmarshall/crmhub-backend/internal/transport/middleware"
	"github.com/heartmarshall/crmhub-backend/internal/transport/rest"
	"github.com/heartmarshall/crmhub-backend/internal/transport/rpc"
)

type routerDeps struct {
	log     *slog.Logger
	tokens  *auth.JWTManager
	health  *rest.HealthHandler
	graphql http.Handler
	rpc     *rpc.Server
}

// newRouter mounts every endpoint behind the common middleware stack.
// Tenant and caller are resolved before logging so access logs carry them.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.Subdomain(),
		middleware.Recovery(d.log),
		middleware.Auth(d.tokens),
		middleware.Logger(d.log),
	)

	r.Get("/live", d.health.Live)
	r.Get("/ready", d.health.Ready)
	r.Get("/health", d.health.Health)

	r.Method(http.MethodPost, "/graphql", d.graphql)
	d.rpc.Mount(r)

	return r
}
