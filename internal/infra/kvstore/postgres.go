package kvstore

import (
	"context"
	"errors"
	"time"

	"retreat-api/internal/infra"
	"retreat-api/internal/pkg/clock"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	queryGet    = `SELECT value FROM form_state WHERE key = $1`
	queryUpsert = `INSERT INTO form_state (key, value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	queryRemove = `DELETE FROM form_state WHERE key = $1`
	querySweep  = `DELETE FROM form_state WHERE updated_at < $1`
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres shares anti-spam state between service replicas.
type Postgres struct {
	db    DBTX
	clock clock.Clock
}

func NewPostgres(db DBTX, clk clock.Clock) *Postgres {
	return &Postgres{db: db, clock: clk}
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.QueryRow(ctx, queryGet, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, infra.WrapRepoErr("failed to read form state", err, kindOf(err))
	}
	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	if _, err := p.db.Exec(ctx, queryUpsert, key, value, p.clock.Now()); err != nil {
		return infra.WrapRepoErr("failed to write form state", err, kindOf(err))
	}
	return nil
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	if _, err := p.db.Exec(ctx, queryRemove, key); err != nil {
		return infra.WrapRepoErr("failed to remove form state", err, kindOf(err))
	}
	return nil
}

func (p *Postgres) Sweep(ctx context.Context, before time.Time) (int64, error) {
	tag, err := p.db.Exec(ctx, querySweep, before)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sweep form state", err, kindOf(err))
	}
	return tag.RowsAffected(), nil
}

func kindOf(err error) infra.RepositoryErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return infra.KindTimeout
	}
	return infra.KindDBFailure
}
