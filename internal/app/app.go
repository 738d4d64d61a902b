package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heartmarshall/crmhub-backend/internal/adapter/broker"
	"github.com/heartmarshall/crmhub-backend/internal/adapter/mongodb"
	mongoactivity "github.com/heartmarshall/crmhub-backend/internal/adapter/mongodb/activity"
	"github.com/heartmarshall/crmhub-backend/internal/adapter/mongodb/order"
	"github.com/heartmarshall/crmhub-backend/internal/adapter/mongodb/pos"
	"github.com/heartmarshall/crmhub-backend/internal/adapter/mongodb/task"
	"github.com/heartmarshall/crmhub-backend/internal/adapter/postgres"
	pgregistry "github.com/heartmarshall/crmhub-backend/internal/adapter/postgres/registry"
	"github.com/heartmarshall/crmhub-backend/internal/adapter/search"
	"github.com/heartmarshall/crmhub-backend/internal/auth"
	"github.com/heartmarshall/crmhub-backend/internal/config"
	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/activity"
	"github.com/heartmarshall/crmhub-backend/internal/service/posorder"
	"github.com/heartmarshall/crmhub-backend/internal/service/taskseg"
	"github.com/heartmarshall/crmhub-backend/internal/transport/graphql"
	"github.com/heartmarshall/crmhub-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/crmhub-backend/internal/transport/rest"
	"github.com/heartmarshall/crmhub-backend/internal/transport/rpc"
)

type serviceRegistry interface {
	ListServices(ctx context.Context) ([]domain.ServiceDescriptor, error)
}

// Run is the application entry point. It loads configuration, connects to
// the stores, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, logCloser := NewLogger(cfg.Log)
	defer logCloser.Close() //nolint:errcheck

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("pos_timezone", cfg.POS.Timezone),
	)

	// --- Stores ---

	mongoClient, err := mongodb.NewClient(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer disconnect(logger, mongoClient)
	db := mongoClient.Database(cfg.Mongo.Database)

	components := []rest.Component{{Name: "mongo", Pinger: mongodb.Pinger{Client: mongoClient}}}

	var registry serviceRegistry
	if cfg.Database.DSN != "" {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		registry = pgregistry.New(pool)
		components = append(components, rest.Component{Name: "postgres", Pinger: pool})
		logger.Info("service registry: postgres")
	} else {
		registry = newStaticRegistry(cfg.Registry.Services)
		logger.Info("service registry: static", slog.Int("services", len(cfg.Registry.Services)))
	}

	// --- Adapters ---

	brokerClient := broker.New(cfg.Broker, logger)
	core := broker.NewCore(brokerClient)
	searchClient := search.New(cfg.Search, logger)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	// --- Services ---

	posService := posorder.NewService(logger, order.New(db, cfg.POS.Location), pos.New(db), core, cfg.POS.Location)
	activityService := activity.NewService(logger, mongoactivity.New(db), registry, brokerClient)
	taskSegService := taskseg.NewService(logger, task.New(db), registry, searchClient, core, brokerClient)

	// --- Transport ---

	var checker graphql.PermissionChecker = graphql.AllowAll{}
	if cfg.Auth.EnforcePermissions {
		checker = graphql.ClaimsChecker{}
	}
	ops := resolver.NewResolver(logger, posService, activityService).Operations()

	router := newRouter(routerDeps{
		log:     logger,
		tokens:  tokens,
		health:  rest.NewHealthHandler(BuildVersion(), components...),
		graphql: graphql.NewHandler(logger, ops, checker),
		rpc:     rpc.NewServer(logger, rpc.TaskSegmentActions(taskSegService)),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests
// within timeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func disconnect(logger *slog.Logger, client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Warn("mongo disconnect", slog.String("error", err.Error()))
	}
}
