package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createMeeting = `-- name: CreateMeeting :one
INSERT INTO meetings (id, title, meeting_time, user_id, booking_token, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, title, meeting_time, user_id, booking_token, status, created_at
`

type CreateMeetingParams struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	MeetingTime  pgtype.Timestamptz `json:"meeting_time"`
	UserID       uuid.UUID          `json:"user_id"`
	BookingToken string             `json:"booking_token"`
	Status       string             `json:"status"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateMeeting(ctx context.Context, db DBTX, arg CreateMeetingParams) (Meetings, error) {
	row := db.QueryRow(ctx, createMeeting,
		arg.ID,
		arg.Title,
		arg.MeetingTime,
		arg.UserID,
		arg.BookingToken,
		arg.Status,
		arg.CreatedAt,
	)
	return scanMeeting(row)
}

const findMeetingByID = `-- name: FindMeetingByID :one
SELECT id, title, meeting_time, user_id, booking_token, status, created_at
FROM meetings
WHERE id = $1
`

func (q *Queries) FindMeetingByID(ctx context.Context, db DBTX, id uuid.UUID) (Meetings, error) {
	return scanMeeting(db.QueryRow(ctx, findMeetingByID, id))
}

const findMeetingByToken = `-- name: FindMeetingByToken :one
SELECT id, title, meeting_time, user_id, booking_token, status, created_at
FROM meetings
WHERE booking_token = $1
`

func (q *Queries) FindMeetingByToken(ctx context.Context, db DBTX, bookingToken string) (Meetings, error) {
	return scanMeeting(db.QueryRow(ctx, findMeetingByToken, bookingToken))
}

// The status predicate is re-evaluated after a competing transaction
// commits, so a waiter behind the winner sees no row instead of a stale one.
const lockMeetingByTokenAndStatus = `-- name: LockMeetingByTokenAndStatus :one
SELECT id, title, meeting_time, user_id, booking_token, status, created_at
FROM meetings
WHERE booking_token = $1 AND status = $2
FOR UPDATE
`

type LockMeetingByTokenAndStatusParams struct {
	BookingToken string `json:"booking_token"`
	Status       string `json:"status"`
}

func (q *Queries) LockMeetingByTokenAndStatus(ctx context.Context, db DBTX, arg LockMeetingByTokenAndStatusParams) (Meetings, error) {
	return scanMeeting(db.QueryRow(ctx, lockMeetingByTokenAndStatus, arg.BookingToken, arg.Status))
}

const updateMeetingStatus = `-- name: UpdateMeetingStatus :execrows
UPDATE meetings
SET status = $2
WHERE id = $1
`

type UpdateMeetingStatusParams struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func (q *Queries) UpdateMeetingStatus(ctx context.Context, db DBTX, arg UpdateMeetingStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateMeetingStatus, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listMeetingsWithOwner = `-- name: ListMeetingsWithOwner :many
SELECT
    m.id,
    m.title,
    m.meeting_time,
    m.status,
    m.created_at,
    u.id AS user_id,
    u.name AS user_name,
    u.email AS user_email
FROM meetings m
JOIN users u ON m.user_id = u.id
ORDER BY m.created_at ASC, m.id ASC
`

type ListMeetingsWithOwnerRow struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	MeetingTime pgtype.Timestamptz `json:"meeting_time"`
	Status      string             `json:"status"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UserID      uuid.UUID          `json:"user_id"`
	UserName    string             `json:"user_name"`
	UserEmail   string             `json:"user_email"`
}

func (q *Queries) ListMeetingsWithOwner(ctx context.Context, db DBTX) ([]ListMeetingsWithOwnerRow, error) {
	rows, err := db.Query(ctx, listMeetingsWithOwner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListMeetingsWithOwnerRow{}
	for rows.Next() {
		var i ListMeetingsWithOwnerRow
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.MeetingTime,
			&i.Status,
			&i.CreatedAt,
			&i.UserID,
			&i.UserName,
			&i.UserEmail,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeeting(row rowScanner) (Meetings, error) {
	var i Meetings
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.MeetingTime,
		&i.UserID,
		&i.BookingToken,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}
