// Package common holds small pieces shared by every domain: the database
// pool abstraction and the HTTP error responder.
package common

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGXPool is the subset of *pgxpool.Pool the repositories use. Keeping it
// narrow lets tests substitute pgxmock for a live pool.
type PGXPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ PGXPool = (*pgxpool.Pool)(nil)
