//go:build unit

package kvstore

import (
	"context"
	"testing"
	"time"

	"retreat-api/internal/infra"
	"retreat-api/internal/pkg/clock"
	"retreat-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

type stubRow struct {
	value string
	err   error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestPostgres_Get(t *testing.T) {
	tests := []struct {
		name      string
		row       stubRow
		wantValue string
		wantFound bool
		wantErr   bool
	}{
		{name: "found", row: stubRow{value: "1740819600000"}, wantValue: "1740819600000", wantFound: true},
		{name: "missing", row: stubRow{err: pgx.ErrNoRows}},
		{name: "database error", row: stubRow{err: assert.AnError}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, queryGet, []any{"c1:lastSubmitTime"}).Return(tt.row)

			store := NewPostgres(db, clock.NewMockClock(now))
			value, found, err := store.Get(context.Background(), "c1:lastSubmitTime")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.True(t, errs.Is(err, errs.ErrStoreOperation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantFound, found)
			db.AssertExpectations(t)
		})
	}
}

func TestPostgres_SetStampsClock(t *testing.T) {
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, queryUpsert, []any{"c1:formStartTime", "42", now}).
		Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

	store := NewPostgres(db, clock.NewMockClock(now))
	require.NoError(t, store.Set(context.Background(), "c1:formStartTime", "42"))
	db.AssertExpectations(t)
}

func TestPostgres_RemoveError(t *testing.T) {
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, queryRemove, []any{"c1:formStartTime"}).
		Return(pgconn.CommandTag{}, assert.AnError)

	store := NewPostgres(db, clock.NewMockClock(now))
	err := store.Remove(context.Background(), "c1:formStartTime")

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrStoreOperation))
}

func TestPostgres_Sweep(t *testing.T) {
	before := now.Add(-24 * time.Hour)
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, querySweep, []any{before}).
		Return(pgconn.NewCommandTag("DELETE 3"), nil)

	store := NewPostgres(db, clock.NewMockClock(now))
	removed, err := store.Sweep(context.Background(), before)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestPostgres_TimeoutKind(t *testing.T) {
	db := new(MockDBTX)
	db.On("QueryRow", mock.Anything, queryGet, []any{"c1:formStartTime"}).
		Return(stubRow{err: context.DeadlineExceeded})

	store := NewPostgres(db, clock.NewMockClock(now))
	_, _, err := store.Get(context.Background(), "c1:formStartTime")

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindTimeout))
	assert.True(t, errs.Is(err, errs.ErrStoreOperation))
}
