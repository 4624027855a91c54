package meeting

import (
	"errors"
	"io"
	"time"

	"meetslot/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrMeetingNotOpen   = errors.New("meeting is not open for booking")
	ErrSlotNotInMeeting = errors.New("slot does not belong to meeting")
	ErrSlotNotAvailable = errors.New("slot is not available")
	ErrMissingOwner     = errors.New("meeting owner is required")
)

type Services struct {
	Clock   clock.Clock
	Entropy io.Reader
}

type Meeting struct {
	id          uuid.UUID
	title       Title
	scheduledAt time.Time
	ownerID     uuid.UUID
	token       BookingToken
	status      Status
	createdAt   time.Time
}

func NewMeeting(services *Services, title Title, scheduledAt time.Time, ownerID uuid.UUID) (*Meeting, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	token, err := GenerateBookingToken(services.Entropy)
	if err != nil {
		return nil, err
	}

	return &Meeting{
		id:          uuid.New(),
		title:       title,
		scheduledAt: scheduledAt,
		ownerID:     ownerID,
		token:       token,
		status:      StatusOpen,
		createdAt:   services.Clock.Now(),
	}, nil
}

func ReconstructMeeting(
	id uuid.UUID,
	title Title,
	scheduledAt time.Time,
	ownerID uuid.UUID,
	token BookingToken,
	status Status,
	createdAt time.Time,
) *Meeting {
	return &Meeting{
		id:          id,
		title:       title,
		scheduledAt: scheduledAt,
		ownerID:     ownerID,
		token:       token,
		status:      status,
		createdAt:   createdAt,
	}
}

// Confirm books slot and confirms the meeting in one step. Both entities are
// left untouched when any precondition fails.
func (m *Meeting) Confirm(slot *Slot) error {
	if m.status != StatusOpen {
		return ErrMeetingNotOpen
	}
	if slot.meetingID != m.id {
		return ErrSlotNotInMeeting
	}
	if slot.status != SlotStatusAvailable {
		return ErrSlotNotAvailable
	}

	slot.status = SlotStatusBooked
	m.status = StatusConfirmed
	return nil
}

// AcceptsSlots reports whether new candidate slots still make sense.
func (m *Meeting) AcceptsSlots() bool {
	return m.status == StatusOpen
}

func (m *Meeting) IsConfirmed() bool {
	return m.status == StatusConfirmed
}

func (m *Meeting) ID() uuid.UUID          { return m.id }
func (m *Meeting) Title() Title           { return m.title }
func (m *Meeting) ScheduledAt() time.Time { return m.scheduledAt }
func (m *Meeting) OwnerID() uuid.UUID     { return m.ownerID }
func (m *Meeting) Token() BookingToken    { return m.token }
func (m *Meeting) Status() Status         { return m.status }
func (m *Meeting) CreatedAt() time.Time   { return m.createdAt }
