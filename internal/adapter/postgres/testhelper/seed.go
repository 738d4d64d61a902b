package testhelper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

// SeedService inserts a service row directly, bypassing the repository.
func SeedService(t *testing.T, pool *pgxpool.Pool, svc domain.ServiceDescriptor, enabled bool) {
	t.Helper()

	meta, err := json.Marshal(svc.Meta)
	if err != nil {
		t.Fatalf("testhelper: SeedService marshal meta: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO services (name, meta, enabled) VALUES ($1, $2, $3)`,
		svc.Name, meta, enabled,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedService insert: %v", err)
	}
}
