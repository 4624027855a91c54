package response

import (
	"time"

	"meetslot/internal/usecase/commands"
	"meetslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	MeetingID uuid.UUID `json:"meeting_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type MeetingResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	MeetingTime time.Time      `json:"meeting_time"`
	OwnerID     uuid.UUID      `json:"user_id"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	Slots       []SlotResponse `json:"slots"`
}

type OwnerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type MeetingListItemResponse struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	MeetingTime time.Time     `json:"meeting_time"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	Owner       OwnerResponse `json:"owner"`
}

type CreateMeetingResponse struct {
	Meeting     *MeetingResponse `json:"meeting"`
	BookingLink string           `json:"booking_link"`
}

type SlotFailureResponse struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type AddSlotsResponse struct {
	Slots  []SlotResponse        `json:"slots"`
	Failed []SlotFailureResponse `json:"failed,omitempty"`
}

func FromMeetingView(v *queries.MeetingView) *MeetingResponse {
	res := mapTo[MeetingResponse](v)
	if res.Slots == nil {
		res.Slots = []SlotResponse{}
	}
	return &res
}

func FromMeetingList(items []*queries.MeetingListItem) []*MeetingListItemResponse {
	res := make([]*MeetingListItemResponse, len(items))
	for i, it := range items {
		item := mapTo[MeetingListItemResponse](it)
		res[i] = &item
	}
	return res
}

func FromCreateMeetingResult(r *commands.CreateMeetingResult) *CreateMeetingResponse {
	return &CreateMeetingResponse{
		Meeting:     FromMeetingView(&r.Meeting),
		BookingLink: r.BookingLink,
	}
}

func FromAddSlotsResult(r *commands.AddSlotsResult) *AddSlotsResponse {
	res := &AddSlotsResponse{Slots: []SlotResponse{}}
	if len(r.Created) > 0 {
		res.Slots = mapTo[[]SlotResponse](r.Created)
	}
	if len(r.Failed) > 0 {
		res.Failed = mapTo[[]SlotFailureResponse](r.Failed)
	}
	return res
}
