// Command migrate applies the service registry schema and, with --sync,
// replaces the enabled services with the configured list plus tasks.
//
// Usage:
//
//	migrate [--sync]
//
// Requires DATABASE_DSN (or database.dsn in the config file).
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/crmhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crmhub-backend/internal/adapter/postgres/registry"
	"github.com/heartmarshall/crmhub-backend/internal/app"
	"github.com/heartmarshall/crmhub-backend/internal/config"
	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/taskseg"
	"github.com/heartmarshall/crmhub-backend/migrations"
)

func main() {
	sync := flag.Bool("sync", false, "replace enabled services with registry.services from config")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Database.DSN == "" {
		log.Fatal("database.dsn (DATABASE_DSN) is required")
	}

	logger, closer := app.NewLogger(cfg.Log)
	defer closer.Close() //nolint:errcheck

	if err := migrate(cfg.Database.DSN); err != nil {
		logger.Error("apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("migrations applied")

	if !*sync {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	services := withTasks(cfg.Registry.Services)
	if err := registry.New(pool).Sync(ctx, services); err != nil {
		logger.Error("sync services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("services synced", slog.Int("count", len(services)))
}

func migrate(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

// withTasks appends the tasks descriptor unless the list already has one.
func withTasks(services []domain.ServiceDescriptor) []domain.ServiceDescriptor {
	out := make([]domain.ServiceDescriptor, 0, len(services)+1)
	for _, svc := range services {
		if svc.Name == taskseg.ServiceName {
			return append(out, services...)
		}
	}
	out = append(out, services...)
	return append(out, taskseg.Descriptor())
}
