// Package registry persists sibling service descriptors in PostgreSQL.
package registry

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crmhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

const tableServices = "services"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo reads and writes the services table.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a registry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListServices returns every enabled service ordered by name.
func (r *Repo) ListServices(ctx context.Context) ([]domain.ServiceDescriptor, error) {
	query, args, err := psql.
		Select("name", "meta").
		From(tableServices).
		Where(sq.Eq{"enabled": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list services query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "services", "list")
	}
	defer rows.Close()

	services := []domain.ServiceDescriptor{}
	for rows.Next() {
		var (
			name string
			meta []byte
		)
		if err := rows.Scan(&name, &meta); err != nil {
			return nil, postgres.MapError(err, "service", "scan")
		}
		svc, err := toDomain(name, meta)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "services", "list")
	}
	return services, nil
}

// GetByName returns one enabled service.
func (r *Repo) GetByName(ctx context.Context, name string) (domain.ServiceDescriptor, error) {
	query, args, err := psql.
		Select("meta").
		From(tableServices).
		Where(sq.Eq{"name": name, "enabled": true}).
		ToSql()
	if err != nil {
		return domain.ServiceDescriptor{}, fmt.Errorf("build get service query: %w", err)
	}

	var meta []byte
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&meta); err != nil {
		return domain.ServiceDescriptor{}, postgres.MapError(err, "service", name)
	}
	return toDomain(name, meta)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts or replaces a service descriptor and enables it.
func (r *Repo) Upsert(ctx context.Context, svc domain.ServiceDescriptor) error {
	meta, err := json.Marshal(svc.Meta)
	if err != nil {
		return fmt.Errorf("service %s marshal meta: %w", svc.Name, err)
	}

	query, args, err := psql.
		Insert(tableServices).
		Columns("name", "meta", "enabled", "updated_at").
		Values(svc.Name, meta, true, sq.Expr("now()")).
		Suffix("ON CONFLICT (name) DO UPDATE SET meta = EXCLUDED.meta, enabled = TRUE, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert service query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "service", svc.Name)
	}
	return nil
}

// Sync makes the enabled set equal to services: listed services are upserted
// and every other row is disabled, atomically.
func (r *Repo) Sync(ctx context.Context, services []domain.ServiceDescriptor) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		names := make([]string, 0, len(services))
		for _, svc := range services {
			if err := r.Upsert(ctx, svc); err != nil {
				return err
			}
			names = append(names, svc.Name)
		}

		update := psql.Update(tableServices).
			Set("enabled", false).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"enabled": true})
		if len(names) > 0 {
			update = update.Where(sq.NotEq{"name": names})
		}

		query, args, err := update.ToSql()
		if err != nil {
			return fmt.Errorf("build disable services query: %w", err)
		}
		if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "services", "disable")
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(name string, meta []byte) (domain.ServiceDescriptor, error) {
	svc := domain.ServiceDescriptor{Name: name}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &svc.Meta); err != nil {
			return domain.ServiceDescriptor{}, fmt.Errorf("service %s unmarshal meta: %w", name, err)
		}
	}
	return svc, nil
}
