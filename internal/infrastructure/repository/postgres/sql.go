// Package postgres implements the domain repositories on PostgreSQL with
// sqlx. Queries go through the in-house querybuilder; unique violations are
// normalized to storage.ErrDuplicateKey so the services can translate them.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/goalmaven/goal-maven/internal/domain/storage"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

const uniqueViolation = "23505"

// wrapDuplicate converts a pq unique violation into the storage sentinel and
// leaves everything else untouched.
func wrapDuplicate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", storage.ErrDuplicateKey, pqErr.Constraint)
	}
	return err
}

// execAffected runs a write and reports whether any row changed.
func execAffected(ctx context.Context, db *sqlx.DB, what, query string, args []any) (bool, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", what, wrapDuplicate(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s rows affected: %w", what, err)
	}
	return affected > 0, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	out := v.Int64
	return &out
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}
