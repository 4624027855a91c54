package notify

import (
	"time"

	"github.com/google/uuid"
)

const RoutingKeyBookingConfirmed = "booking.confirmed"

// BookingConfirmed is emitted once per committed confirmation.
type BookingConfirmed struct {
	MeetingID   uuid.UUID `json:"meeting_id"`
	SlotID      uuid.UUID `json:"slot_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	SlotStart   time.Time `json:"slot_start"`
	SlotEnd     time.Time `json:"slot_end"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

func (BookingConfirmed) RoutingKey() string {
	return RoutingKeyBookingConfirmed
}
