package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Meetings struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	MeetingTime  pgtype.Timestamptz `json:"meeting_time"`
	UserID       uuid.UUID          `json:"user_id"`
	BookingToken string             `json:"booking_token"`
	Status       string             `json:"status"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

type MeetingSlots struct {
	ID        uuid.UUID          `json:"id"`
	MeetingID uuid.UUID          `json:"meeting_id"`
	StartTime pgtype.Timestamptz `json:"start_time"`
	EndTime   pgtype.Timestamptz `json:"end_time"`
	Status    string             `json:"status"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}
