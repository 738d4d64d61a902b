package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// Context errors are wrapped but keep their identity.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502", "23514": // not_null_violation, check_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		case "08000", "08003", "08006", "57P01": // connection failures, admin shutdown
			return fmt.Errorf("%s %s: %v: %w", entity, key, err, domain.ErrUpstreamUnavailable)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, key, err)
}
