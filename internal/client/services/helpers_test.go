package services

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/healthmate/internal/client/models"
	"github.com/dmitrijs2005/healthmate/internal/logging"
)

var dbSeq atomic.Int64

// setupDB opens a fresh in-memory database with the storage table. A named
// shared-cache DSN keeps all pooled connections on the same database.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE storage (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func newTestLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func getRaw(t *testing.T, db *sql.DB, key string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM storage WHERE key=?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

func setRaw(t *testing.T, db *sql.DB, key string, value []byte) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO storage(key,value) VALUES(?,?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	require.NoError(t, err)
}

// fakeScheduler реализует ReminderScheduler для юнит-тестов ReminderService.
type fakeScheduler struct {
	mu        sync.Mutex
	Scheduled []models.Reminder
	Cancelled []string
}

func (f *fakeScheduler) Schedule(r models.Reminder) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Scheduled = append(f.Scheduled, r)
}

func (f *fakeScheduler) Cancel(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Cancelled = append(f.Cancelled, id)
}

// fakeApplier records dark-mode side effects.
type fakeApplier struct {
	Calls []bool
}

func (f *fakeApplier) ApplyDarkMode(enabled bool) {
	f.Calls = append(f.Calls, enabled)
}
