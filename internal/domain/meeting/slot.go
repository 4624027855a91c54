package meeting

import (
	"time"

	"github.com/google/uuid"
)

type Slot struct {
	id        uuid.UUID
	meetingID uuid.UUID
	timeSlot  TimeSlot
	status    SlotStatus
	createdAt time.Time
}

func NewSlot(meetingID uuid.UUID, timeSlot TimeSlot, now time.Time) *Slot {
	return &Slot{
		id:        uuid.New(),
		meetingID: meetingID,
		timeSlot:  timeSlot,
		status:    SlotStatusAvailable,
		createdAt: now,
	}
}

func ReconstructSlot(id, meetingID uuid.UUID, timeSlot TimeSlot, status SlotStatus, createdAt time.Time) *Slot {
	return &Slot{
		id:        id,
		meetingID: meetingID,
		timeSlot:  timeSlot,
		status:    status,
		createdAt: createdAt,
	}
}

func (s *Slot) IsAvailable() bool {
	return s.status == SlotStatusAvailable
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) MeetingID() uuid.UUID { return s.meetingID }
func (s *Slot) TimeSlot() TimeSlot   { return s.timeSlot }
func (s *Slot) Status() SlotStatus   { return s.status }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
