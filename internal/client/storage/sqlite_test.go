package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpenSQLite_CreatesSchema(t *testing.T) {
	s := openTestSQLite(t)

	assert.True(t, tableExists(t, s.db, "kv"))
	assert.True(t, tableExists(t, s.db, "goose_db_version"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	s := openTestSQLite(t)
	require.NoError(t, RunMigrations(context.Background(), s.db))
	assert.True(t, tableExists(t, s.db, "kv"))
}

func TestSQLiteStore_SetGetRemove(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()

	_, found, err := s.Get(ctx, UserRecordKey)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, UserRecordKey, `{"email":"a@b.com"}`))
	v, found, err := s.Get(ctx, UserRecordKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"email":"a@b.com"}`, v)

	require.NoError(t, s.Set(ctx, UserRecordKey, `{"email":"c@d.com"}`))
	v, _, err = s.Get(ctx, UserRecordKey)
	require.NoError(t, err)
	assert.Equal(t, `{"email":"c@d.com"}`, v, "set overwrites wholesale")

	require.NoError(t, s.Remove(ctx, LegacyAuthKey, UserRecordKey))
	_, found, err = s.Get(ctx, UserRecordKey)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Remove(ctx, UserRecordKey), "removing a missing key is a no-op")
	require.NoError(t, s.Remove(ctx))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	v, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)
}

func TestSQLiteStore_GetErrorWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT value FROM kv`).WithArgs("k").WillReturnError(errors.New("io"))

	_, found, err := NewSQLiteStore(db).Get(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, found)
	assert.Contains(t, err.Error(), "failed to get kv[k]")
}

func TestSQLiteStore_SetErrorWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO kv`).WithArgs("k", "v").WillReturnError(errors.New("readonly"))

	err = NewSQLiteStore(db).Set(context.Background(), "k", "v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set kv[k]")
}

func TestSQLiteStore_RemoveRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM kv`).WithArgs("auth").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM kv`).WithArgs("signUpForm").WillReturnError(errors.New("busy"))
	mock.ExpectRollback()

	err = NewSQLiteStore(db).Remove(context.Background(), LegacyAuthKey, UserRecordKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to remove kv[signUpForm]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_ClosedDB(t *testing.T) {
	s := openTestSQLite(t)
	require.NoError(t, s.Close())

	_, _, err := s.Get(context.Background(), "k")
	require.Error(t, err)
}
