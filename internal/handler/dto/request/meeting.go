package request

import (
	"time"

	"meetslot/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateMeetingRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	MeetingTime time.Time `json:"meeting_time" binding:"required"`
	UserID      uuid.UUID `json:"user_id" binding:"required"`
}

func (r *CreateMeetingRequest) ToParams() commands.CreateMeetingParams {
	return commands.CreateMeetingParams{
		Title:       r.Title,
		MeetingTime: r.MeetingTime,
		OwnerID:     r.UserID,
	}
}

type SlotRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// Window ordering is checked by AddSlots before anything is stored; one bad
// entry rejects the whole batch and the error names its index.
type AddSlotsRequest struct {
	Slots []SlotRequest `json:"slots" binding:"required,min=1,dive"`
}

func (r *AddSlotsRequest) ToInputs() []commands.SlotInput {
	inputs := make([]commands.SlotInput, len(r.Slots))
	for i, s := range r.Slots {
		inputs[i] = commands.SlotInput{Start: s.StartTime, End: s.EndTime}
	}
	return inputs
}
