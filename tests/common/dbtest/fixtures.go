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

func CreateTestUser(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestMeeting(t *testing.T, db DBLike, ownerID uuid.UUID, title, token, status string) uuid.UUID {
	t.Helper()

	meetingID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO meetings (id, title, meeting_time, user_id, booking_token, status) VALUES ($1, $2, $3, $4, $5, $6)",
		meetingID, title, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), ownerID, token, status)
	require.NoError(t, err)

	return meetingID
}

func CreateTestSlot(t *testing.T, db DBLike, meetingID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO meeting_slots (id, meeting_id, start_time, end_time, status) VALUES ($1, $2, $3, $4, $5)",
		slotID, meetingID, start, end, status)
	require.NoError(t, err)

	return slotID
}

// MeetingStatus reads the stored status of a meeting.
func MeetingStatus(t *testing.T, db DBLike, meetingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM meetings WHERE id = $1", meetingID).Scan(&status)
	require.NoError(t, err)
	return status
}

// SlotStatuses returns slot id → status for every slot of a meeting.
func SlotStatuses(t *testing.T, db *pgxpool.Pool, meetingID uuid.UUID) map[uuid.UUID]string {
	t.Helper()

	rows, err := db.Query(context.Background(), "SELECT id, status FROM meeting_slots WHERE meeting_id = $1", meetingID)
	require.NoError(t, err)
	defer rows.Close()

	out := make(map[uuid.UUID]string)
	for rows.Next() {
		var id uuid.UUID
		var status string
		require.NoError(t, rows.Scan(&id, &status))
		out[id] = status
	}
	require.NoError(t, rows.Err())
	return out
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
