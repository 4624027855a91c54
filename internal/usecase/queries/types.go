package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type OwnerSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type MeetingListItem struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	MeetingTime time.Time    `json:"meeting_time"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	Owner       OwnerSummary `json:"owner"`
}

type SlotView struct {
	ID        uuid.UUID `json:"id"`
	MeetingID uuid.UUID `json:"meeting_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// MeetingView never carries the booking token: it is only handed out once,
// when the meeting is created.
type MeetingView struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	MeetingTime time.Time  `json:"meeting_time"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	Slots       []SlotView `json:"slots"`
}

type BookingView struct {
	Meeting        MeetingView `json:"meeting"`
	AvailableSlots []SlotView  `json:"available_slots"`
}
