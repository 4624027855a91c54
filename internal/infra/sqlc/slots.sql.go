package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createSlot = `-- name: CreateSlot :one
INSERT INTO meeting_slots (id, meeting_id, start_time, end_time, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, meeting_id, start_time, end_time, status, created_at
`

type CreateSlotParams struct {
	ID        uuid.UUID          `json:"id"`
	MeetingID uuid.UUID          `json:"meeting_id"`
	StartTime pgtype.Timestamptz `json:"start_time"`
	EndTime   pgtype.Timestamptz `json:"end_time"`
	Status    string             `json:"status"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateSlot(ctx context.Context, db DBTX, arg CreateSlotParams) (MeetingSlots, error) {
	row := db.QueryRow(ctx, createSlot,
		arg.ID,
		arg.MeetingID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.CreatedAt,
	)
	return scanSlot(row)
}

const lockSlotByIDAndStatus = `-- name: LockSlotByIDAndStatus :one
SELECT id, meeting_id, start_time, end_time, status, created_at
FROM meeting_slots
WHERE id = $1 AND meeting_id = $2 AND status = $3
FOR UPDATE
`

type LockSlotByIDAndStatusParams struct {
	ID        uuid.UUID `json:"id"`
	MeetingID uuid.UUID `json:"meeting_id"`
	Status    string    `json:"status"`
}

func (q *Queries) LockSlotByIDAndStatus(ctx context.Context, db DBTX, arg LockSlotByIDAndStatusParams) (MeetingSlots, error) {
	return scanSlot(db.QueryRow(ctx, lockSlotByIDAndStatus, arg.ID, arg.MeetingID, arg.Status))
}

const updateSlotStatus = `-- name: UpdateSlotStatus :execrows
UPDATE meeting_slots
SET status = $2
WHERE id = $1
`

type UpdateSlotStatusParams struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func (q *Queries) UpdateSlotStatus(ctx context.Context, db DBTX, arg UpdateSlotStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateSlotStatus, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listSlotsByMeeting = `-- name: ListSlotsByMeeting :many
SELECT id, meeting_id, start_time, end_time, status, created_at
FROM meeting_slots
WHERE meeting_id = $1
ORDER BY start_time ASC, id ASC
`

func (q *Queries) ListSlotsByMeeting(ctx context.Context, db DBTX, meetingID uuid.UUID) ([]MeetingSlots, error) {
	rows, err := db.Query(ctx, listSlotsByMeeting, meetingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSlots(rows)
}

const listSlotsByMeetingAndStatus = `-- name: ListSlotsByMeetingAndStatus :many
SELECT id, meeting_id, start_time, end_time, status, created_at
FROM meeting_slots
WHERE meeting_id = $1 AND status = $2
ORDER BY start_time ASC, id ASC
`

type ListSlotsByMeetingAndStatusParams struct {
	MeetingID uuid.UUID `json:"meeting_id"`
	Status    string    `json:"status"`
}

func (q *Queries) ListSlotsByMeetingAndStatus(ctx context.Context, db DBTX, arg ListSlotsByMeetingAndStatusParams) ([]MeetingSlots, error) {
	rows, err := db.Query(ctx, listSlotsByMeetingAndStatus, arg.MeetingID, arg.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSlots(rows)
}

func scanSlot(row rowScanner) (MeetingSlots, error) {
	var i MeetingSlots
	err := row.Scan(
		&i.ID,
		&i.MeetingID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

type slotRows interface {
	rowScanner
	Next() bool
	Err() error
}

func collectSlots(rows slotRows) ([]MeetingSlots, error) {
	items := []MeetingSlots{}
	for rows.Next() {
		i, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
