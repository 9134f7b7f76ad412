//go:build unit

package sqlitestore_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"firm-digest/internal/infra/sqlitestore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const storedTimeLayout = "2006-01-02 15:04:05.000000000"

// fixture seeds directory and task rows the stores only ever read.
type fixture struct {
	t  *testing.T
	db *sql.DB
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, cleanup, err := sqlitestore.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return &fixture{t: t, db: db}
}

func (f *fixture) exec(query string, args ...any) {
	f.t.Helper()
	_, err := f.db.ExecContext(context.Background(), query, args...)
	require.NoError(f.t, err)
}

func (f *fixture) firm(name, timeZone string, active bool) uuid.UUID {
	id := uuid.New()
	f.exec(`INSERT INTO firms (id, name, time_zone, is_active) VALUES (?, ?, ?, ?)`, id.String(), name, timeZone, active)
	return id
}

func (f *fixture) staff(firmID uuid.UUID, name, email, role string, active bool) uuid.UUID {
	id := uuid.New()
	f.exec(`INSERT INTO staff_users (id, firm_id, name, email, role, is_active) VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), firmID.String(), name, email, role, active)
	return id
}

func (f *fixture) client(firmID uuid.UUID, name string) uuid.UUID {
	id := uuid.New()
	f.exec(`INSERT INTO clients (id, firm_id, name) VALUES (?, ?, ?)`, id.String(), firmID.String(), name)
	return id
}

type taskRow struct {
	id        string
	firmID    uuid.UUID
	title     string
	due       *time.Time
	status    string
	clientID  *uuid.UUID
	assignee  *uuid.UUID
	createdBy *uuid.UUID
}

func (f *fixture) task(r taskRow) string {
	if r.id == "" {
		r.id = uuid.NewString()
	}
	if r.status == "" {
		r.status = "assigned"
	}
	var due any
	if r.due != nil {
		due = r.due.UTC().Format(storedTimeLayout)
	}
	f.exec(`INSERT INTO tasks (id, firm_id, title, due_date, status, client_id, assigned_to, created_by) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.id, r.firmID.String(), r.title, due, r.status, nullableID(r.clientID), nullableID(r.assignee), nullableID(r.createdBy))
	return r.id
}

func nullableID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func TestOpen(t *testing.T) {
	t.Run("success: schema is idempotent across reopen", func(t *testing.T) {
		path := t.TempDir() + "/digest.db"
		ctx := context.Background()

		db, cleanup, err := sqlitestore.Open(ctx, path)
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, `INSERT INTO firms (id, name) VALUES ('f1', 'Acme')`)
		require.NoError(t, err)
		cleanup()

		db, cleanup, err = sqlitestore.Open(ctx, path)
		require.NoError(t, err)
		defer cleanup()

		var n int
		require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM firms`).Scan(&n))
		require.Equal(t, 1, n)
	})
}
