//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateFirm(t *testing.T, db DBLike, name, timeZone string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	var tz *string
	if timeZone != "" {
		tz = &timeZone
	}
	_, err := db.Exec(context.Background(),
		"INSERT INTO firms (id, name, time_zone, is_active) VALUES ($1, $2, $3, true)",
		id, name, tz)
	require.NoError(t, err)
	return id
}

func DeactivateFirm(t *testing.T, db DBLike, id uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE firms SET is_active = false WHERE id = $1", id)
	require.NoError(t, err)
}

func CreateStaff(t *testing.T, db DBLike, firmID uuid.UUID, name, email, role string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO staff_users (id, firm_id, name, email, role, is_active) VALUES ($1, $2, $3, $4, $5, true)",
		id, firmID, name, email, role)
	require.NoError(t, err)
	return id
}

func DeactivateStaff(t *testing.T, db DBLike, id uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE staff_users SET is_active = false WHERE id = $1", id)
	require.NoError(t, err)
}

func CreateClient(t *testing.T, db DBLike, firmID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO clients (id, firm_id, name) VALUES ($1, $2, $3)",
		id, firmID, name)
	require.NoError(t, err)
	return id
}

// Task describes a row for CreateTask. Nil pointers are stored as NULL.
type Task struct {
	FirmID     uuid.UUID
	Title      string
	Status     string
	DueDate    *time.Time
	ClientID   *uuid.UUID
	AssignedTo *uuid.UUID
	CreatedBy  *uuid.UUID
}

func CreateTask(t *testing.T, db DBLike, task Task) uuid.UUID {
	t.Helper()

	if task.Status == "" {
		task.Status = "assigned"
	}
	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO tasks (id, firm_id, title, due_date, status, client_id, assigned_to, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, task.FirmID, task.Title, task.DueDate, task.Status, task.ClientID, task.AssignedTo, task.CreatedBy)
	require.NoError(t, err)
	return id
}

func JobStatus(t *testing.T, db DBLike, recipientID uuid.UUID) (status string, attempts int) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT status, attempt_count FROM notification_jobs WHERE recipient_id = $1", recipientID).
		Scan(&status, &attempts)
	require.NoError(t, err)
	return status, attempts
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
