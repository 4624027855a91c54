package commands

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"meetslot/internal/domain/meeting"
	"meetslot/internal/infra"
	"meetslot/internal/pkg/clock"
	"meetslot/internal/pkg/config"
	"meetslot/internal/pkg/errs"
	"meetslot/internal/usecase/queries"
	"meetslot/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateMeetingParams struct {
	Title       string    `validate:"required,max=255"`
	MeetingTime time.Time `validate:"required"`
	OwnerID     uuid.UUID `validate:"required"`
}

type CreateMeetingResult struct {
	Meeting      queries.MeetingView
	BookingToken string
	BookingLink  string
}

type SlotInput struct {
	Start time.Time
	End   time.Time
}

type SlotFailure struct {
	Index  int
	Reason string
}

type AddSlotsResult struct {
	Created []queries.SlotView
	Failed  []SlotFailure
}

type MeetingCommands interface {
	CreateMeeting(ctx context.Context, params CreateMeetingParams) (*CreateMeetingResult, error)
	// AddSlots inserts each slot independently. When some inserts fail the
	// result is still returned, together with ErrPartialSlotBatch.
	AddSlots(ctx context.Context, meetingID uuid.UUID, inputs []SlotInput) (*AddSlotsResult, error)
}

type meetingUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *meeting.Services
	server   config.ServerConfig
}

func NewMeetingUseCase(uow shared.UnitOfWork, clk clock.Clock, server config.ServerConfig) MeetingCommands {
	return newMeetingUseCase(uow, clk, rand.Reader, server)
}

func newMeetingUseCase(uow shared.UnitOfWork, clk clock.Clock, entropy io.Reader, server config.ServerConfig) *meetingUseCaseImpl {
	return &meetingUseCaseImpl{
		uow:      uow,
		services: &meeting.Services{Clock: clk, Entropy: entropy},
		server:   server,
	}
}

func (uc *meetingUseCaseImpl) CreateMeeting(ctx context.Context, params CreateMeetingParams) (*CreateMeetingResult, error) {
	if err := validateStruct(params); err != nil {
		return nil, err
	}
	title, err := meeting.NewTitle(params.Title)
	if err != nil {
		return nil, invalid(err)
	}

	m, err := meeting.NewMeeting(uc.services, title, params.MeetingTime, params.OwnerID)
	if err != nil {
		if errors.Is(err, meeting.ErrTokenSourceFailed) {
			return nil, errs.Mark(err, ErrPersistenceFailure)
		}
		return nil, invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Meetings().Create(ctx, tx.DB(), m)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrOwnerNotFound)
		}
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}

	slog.Info("meeting created",
		"meeting_id", m.ID().String(),
		"owner_id", m.OwnerID().String(),
		"token", m.Token().Redacted())

	return &CreateMeetingResult{
		Meeting:      toMeetingView(m),
		BookingToken: m.Token().String(),
		BookingLink:  uc.server.BookingLink(m.Token().String()),
	}, nil
}

func (uc *meetingUseCaseImpl) AddSlots(ctx context.Context, meetingID uuid.UUID, inputs []SlotInput) (*AddSlotsResult, error) {
	if meetingID == uuid.Nil {
		return nil, invalid(errs.New("meeting id is required"))
	}
	if len(inputs) == 0 {
		return nil, invalid(errs.New("at least one slot is required"))
	}

	timeSlots := make([]meeting.TimeSlot, len(inputs))
	for i, in := range inputs {
		ts, err := meeting.NewTimeSlot(in.Start, in.End)
		if err != nil {
			return nil, invalid(errs.Wrap(err, fmt.Sprintf("slot %d", i)))
		}
		timeSlots[i] = ts
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Meetings().FindByID(ctx, tx.DB(), meetingID)
		if err != nil {
			return err
		}
		if !m.AcceptsSlots() {
			return ErrMeetingNotOpen
		}
		return nil
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrMeetingNotOpen):
			return nil, err
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrMeetingNotFound)
		default:
			return nil, errs.Mark(err, ErrPersistenceFailure)
		}
	}

	result := &AddSlotsResult{
		Created: make([]queries.SlotView, 0, len(timeSlots)),
		Failed:  []SlotFailure{},
	}
	for i, ts := range timeSlots {
		slot := meeting.NewSlot(meetingID, ts, uc.services.Clock.Now())
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Slots().Create(ctx, tx.DB(), slot)
		})
		if err != nil {
			slog.Warn("failed to create slot",
				"meeting_id", meetingID.String(),
				"index", i,
				"error", err.Error())
			result.Failed = append(result.Failed, SlotFailure{Index: i, Reason: slotFailureReason(err)})
			continue
		}
		result.Created = append(result.Created, toSlotView(slot))
	}

	if len(result.Failed) > 0 {
		return result, ErrPartialSlotBatch
	}
	return result, nil
}

func slotFailureReason(err error) string {
	switch {
	case infra.IsKind(err, infra.KindCheckViolated):
		return "slot rejected by constraint"
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return "meeting no longer exists"
	default:
		return "failed to store slot"
	}
}

func toMeetingView(m *meeting.Meeting) queries.MeetingView {
	return queries.MeetingView{
		ID:          m.ID(),
		Title:       m.Title().String(),
		MeetingTime: m.ScheduledAt(),
		OwnerID:     m.OwnerID(),
		Status:      m.Status().String(),
		CreatedAt:   m.CreatedAt(),
		Slots:       []queries.SlotView{},
	}
}

func toSlotView(s *meeting.Slot) queries.SlotView {
	return queries.SlotView{
		ID:        s.ID(),
		MeetingID: s.MeetingID(),
		StartTime: s.TimeSlot().Start(),
		EndTime:   s.TimeSlot().End(),
		Status:    s.Status().String(),
		CreatedAt: s.CreatedAt(),
	}
}
