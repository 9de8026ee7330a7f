package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Rows is the cursor returned by Query. pgx.Rows satisfies it.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}

// Querier runs statements on the pool, or on the transaction carried by
// ctx when called from inside WithTx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgreSQLClient is the pool handle shared by the repositories, the
// migration runner and the readiness probe.
type PostgreSQLClient interface {
	Querier

	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()

	Stats() *pgxpool.Stat
	DatabaseName() string
}
