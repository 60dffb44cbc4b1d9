package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"northern-forge-site/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	execSQL  []string
	execArgs [][]any
	execErr  error
	row      pgx.Row
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	f.execArgs = append(f.execArgs, args)
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return f.row
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestLeadStoreSave(t *testing.T) {
	db := &fakeDB{}
	store := NewLeadStore(db)
	at := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

	err := store.Deliver(context.Background(), &domain.ContactSubmission{
		ID: "c0ffee", Name: "Astrid", BusinessName: "Fjord Bakery", Email: "a@fjord.co.uk",
		ServiceInterest: "Master Forge", Message: "Hello", SubmittedAt: at,
	})
	require.NoError(t, err)

	require.Len(t, db.execSQL, 1)
	assert.Contains(t, db.execSQL[0], "INSERT INTO contact_leads")
	assert.Equal(t, []any{"c0ffee", "Astrid", "Fjord Bakery", "a@fjord.co.uk", "", "Master Forge", "Hello", false, at}, db.execArgs[0])
	assert.Equal(t, "leads", store.Name())
}

func TestLeadStoreSaveError(t *testing.T) {
	store := NewLeadStore(&fakeDB{execErr: errors.New("conn reset")})
	err := store.Save(context.Background(), &domain.ContactSubmission{ID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert contact lead")
}

func TestLeadStoreEnsureSchema(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, NewLeadStore(db).EnsureSchema(context.Background()))
	assert.Contains(t, db.execSQL[0], "CREATE TABLE IF NOT EXISTS contact_leads")
}

func TestLeadStoreGetByIDNotFound(t *testing.T) {
	store := NewLeadStore(&fakeDB{row: errRow{err: pgx.ErrNoRows}})
	_, err := store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
