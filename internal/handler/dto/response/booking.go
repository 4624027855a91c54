package response

import (
	"time"

	"meetslot/internal/usecase/commands"
	"meetslot/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingViewResponse is what an invitee sees behind a booking link: the
// meeting header and the slots still open for selection.
type BookingViewResponse struct {
	Meeting        BookingMeetingResponse `json:"meeting"`
	AvailableSlots []SlotResponse         `json:"available_slots"`
}

type BookingMeetingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	MeetingTime time.Time `json:"meeting_time"`
	Status      string    `json:"status"`
}

type ConfirmBookingResponse struct {
	Message     string    `json:"message"`
	MeetingID   uuid.UUID `json:"meeting_id"`
	SlotID      uuid.UUID `json:"slot_id"`
	Title       string    `json:"title"`
	SlotStart   time.Time `json:"slot_start"`
	SlotEnd     time.Time `json:"slot_end"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

func FromBookingView(v *queries.BookingView) *BookingViewResponse {
	res := &BookingViewResponse{
		Meeting:        mapTo[BookingMeetingResponse](v.Meeting),
		AvailableSlots: []SlotResponse{},
	}
	if len(v.AvailableSlots) > 0 {
		res.AvailableSlots = mapTo[[]SlotResponse](v.AvailableSlots)
	}
	return res
}

func FromBookingReceipt(r *commands.BookingReceipt) *ConfirmBookingResponse {
	res := mapTo[ConfirmBookingResponse](r)
	res.Message = "Meeting confirmed successfully"
	return &res
}
