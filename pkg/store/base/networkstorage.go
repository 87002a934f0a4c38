package base

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// NetworkDBStorage implements the NetworkStorage interface using PostgreSQL.
// Writes are serialized through dbLock and run inside a single transaction
// per network so a partially saved graph is never visible.
type NetworkDBStorage struct {
	conn   pgxIConn
	dbLock sync.Mutex
}

// NewNetworkDBStorageWithConnection creates a new NetworkDBStorage using an
// existing database connection or pool.
func NewNetworkDBStorageWithConnection(conn pgxIConn) *NetworkDBStorage {
	return &NetworkDBStorage{
		conn:   conn,
		dbLock: sync.Mutex{},
	}
}
