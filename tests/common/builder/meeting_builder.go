//go:build unit || e2e

package builder

import (
	"time"

	"meetslot/internal/domain/meeting"
	reqdto "meetslot/internal/handler/dto/request"
	"meetslot/internal/infra/sqlc"
	"meetslot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const DefaultBookingToken = "00112233445566778899aabbccddeeff"

type MeetingBuilder struct {
	ID          uuid.UUID
	Title       string
	ScheduledAt time.Time
	OwnerID     uuid.UUID
	Token       string
	Status      meeting.Status
	CreatedAt   time.Time
}

func NewMeetingBuilder() *MeetingBuilder {
	return &MeetingBuilder{
		ID:          uuid.New(),
		Title:       "Weekly sync",
		ScheduledAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		OwnerID:     uuid.New(),
		Token:       DefaultBookingToken,
		Status:      meeting.StatusOpen,
		CreatedAt:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *MeetingBuilder) With(mutate func(*MeetingBuilder)) *MeetingBuilder {
	mutate(b)
	return b
}

// BuildDomain reconstructs a persisted meeting, bypassing token generation.
func (b *MeetingBuilder) BuildDomain() (*meeting.Meeting, error) {
	title, err := meeting.NewTitle(b.Title)
	if err != nil {
		return nil, err
	}
	token, err := meeting.ParseBookingToken(b.Token)
	if err != nil {
		return nil, err
	}
	return meeting.ReconstructMeeting(b.ID, title, b.ScheduledAt, b.OwnerID, token, b.Status, b.CreatedAt), nil
}

func (b *MeetingBuilder) BuildInfra() sqlc.Meetings {
	return sqlc.Meetings{
		ID:           b.ID,
		Title:        b.Title,
		MeetingTime:  pgtype.Timestamptz{Time: b.ScheduledAt, Valid: true},
		UserID:       b.OwnerID,
		BookingToken: b.Token,
		Status:       b.Status.String(),
		CreatedAt:    pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *MeetingBuilder) BuildView() *queries.MeetingView {
	return &queries.MeetingView{
		ID:          b.ID,
		Title:       b.Title,
		MeetingTime: b.ScheduledAt,
		OwnerID:     b.OwnerID,
		Status:      b.Status.String(),
		CreatedAt:   b.CreatedAt,
		Slots:       []queries.SlotView{},
	}
}

func (b *MeetingBuilder) BuildCreateRequestDTO() reqdto.CreateMeetingRequest {
	return reqdto.CreateMeetingRequest{
		Title:       b.Title,
		MeetingTime: b.ScheduledAt,
		UserID:      b.OwnerID,
	}
}

func (b *MeetingBuilder) WithTitle(title string) *MeetingBuilder {
	b.Title = title
	return b
}

func (b *MeetingBuilder) WithOwner(id uuid.UUID) *MeetingBuilder {
	b.OwnerID = id
	return b
}

func (b *MeetingBuilder) WithToken(token string) *MeetingBuilder {
	b.Token = token
	return b
}

func (b *MeetingBuilder) AsConfirmed() *MeetingBuilder {
	b.Status = meeting.StatusConfirmed
	return b
}

type SlotBuilder struct {
	ID        uuid.UUID
	MeetingID uuid.UUID
	Start     time.Time
	End       time.Time
	Status    meeting.SlotStatus
	CreatedAt time.Time
}

func NewSlotBuilder(meetingID uuid.UUID) *SlotBuilder {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &SlotBuilder{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Start:     start,
		End:       start.Add(time.Hour),
		Status:    meeting.SlotStatusAvailable,
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *SlotBuilder) BuildDomain() (*meeting.Slot, error) {
	ts, err := meeting.NewTimeSlot(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return meeting.ReconstructSlot(b.ID, b.MeetingID, ts, b.Status, b.CreatedAt), nil
}

func (b *SlotBuilder) BuildInfra() sqlc.MeetingSlots {
	return sqlc.MeetingSlots{
		ID:        b.ID,
		MeetingID: b.MeetingID,
		StartTime: pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:   pgtype.Timestamptz{Time: b.End, Valid: true},
		Status:    b.Status.String(),
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *SlotBuilder) BuildView() queries.SlotView {
	return queries.SlotView{
		ID:        b.ID,
		MeetingID: b.MeetingID,
		StartTime: b.Start,
		EndTime:   b.End,
		Status:    b.Status.String(),
		CreatedAt: b.CreatedAt,
	}
}

func (b *SlotBuilder) BuildRequestDTO() reqdto.SlotRequest {
	return reqdto.SlotRequest{StartTime: b.Start, EndTime: b.End}
}

func (b *SlotBuilder) WithWindow(start, end time.Time) *SlotBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *SlotBuilder) AsBooked() *SlotBuilder {
	b.Status = meeting.SlotStatusBooked
	return b
}
