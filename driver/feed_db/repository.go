package feed_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of pgxpool.Pool the repository uses. pgxmock
// satisfies it in tests.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// FeedDBRepository wraps the postgres pool behind the persistence ports.
// All queries are scoped to one owner; nothing here reads cross-user.
type FeedDBRepository struct {
	pool DBPool
}

func NewFeedDBRepository(pool DBPool) *FeedDBRepository {
	return &FeedDBRepository{pool: pool}
}
