//go:build unit || e2e

package dbtest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ResetDB empties every table the service writes to.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := db.Exec(ctx, "TRUNCATE TABLE form_state")
	return err
}

// PutFormState writes a raw state row, bypassing the store, e.g. to plant corrupt values.
func PutFormState(t *testing.T, db DBLike, key, value string, updatedAt time.Time) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		`INSERT INTO form_state (key, value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value, updatedAt)
	require.NoError(t, err)
}

func GetFormState(t *testing.T, db DBLike, key string) (string, bool) {
	t.Helper()
	var value string
	err := db.QueryRow(context.Background(), "SELECT value FROM form_state WHERE key = $1", key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false
	}
	require.NoError(t, err)
	return value, true
}

func CountFormState(t *testing.T, db DBLike) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM form_state").Scan(&n))
	return n
}
