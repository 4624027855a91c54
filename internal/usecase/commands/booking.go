package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"meetslot/internal/domain/meeting"
	"meetslot/internal/infra"
	"meetslot/internal/pkg/clock"
	"meetslot/internal/pkg/errs"
	"meetslot/internal/usecase/notify"
	"meetslot/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReceipt struct {
	MeetingID   uuid.UUID
	SlotID      uuid.UUID
	Title       string
	SlotStart   time.Time
	SlotEnd     time.Time
	ConfirmedAt time.Time
}

type BookingCommands interface {
	ConfirmBooking(ctx context.Context, token string, slotID uuid.UUID) (*BookingReceipt, error)
}

type bookingUseCaseImpl struct {
	uow        shared.UnitOfWork
	dispatcher notify.Dispatcher
	clock      clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, dispatcher notify.Dispatcher, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:        uow,
		dispatcher: dispatcher,
		clock:      clk,
	}
}

// ConfirmBooking books slotID for the meeting behind token. The meeting row
// and then the slot row are locked for the whole transaction, so of any
// number of concurrent confirms for one meeting exactly one commits; the
// others observe the meeting as no longer OPEN once the winner commits.
func (uc *bookingUseCaseImpl) ConfirmBooking(ctx context.Context, token string, slotID uuid.UUID) (*BookingReceipt, error) {
	if slotID == uuid.Nil {
		return nil, invalid(errs.New("slot id is required"))
	}
	bookingToken, err := meeting.ParseBookingToken(token)
	if err != nil {
		return nil, ErrAlreadyConfirmedOrInvalid
	}

	var (
		receipt *BookingReceipt
		ownerID uuid.UUID
	)
	err = uc.uow.WithinOnce(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Meetings().LockOpenByToken(ctx, tx.DB(), bookingToken)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAlreadyConfirmedOrInvalid
			}
			return err
		}

		slot, err := tx.Slots().LockAvailable(ctx, tx.DB(), slotID, m.ID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotUnavailable
			}
			return err
		}

		if err := m.Confirm(slot); err != nil {
			if errors.Is(err, meeting.ErrMeetingNotOpen) {
				return ErrAlreadyConfirmedOrInvalid
			}
			return ErrSlotUnavailable
		}

		if err := tx.Slots().UpdateStatus(ctx, tx.DB(), slot.ID(), slot.Status()); err != nil {
			return err
		}
		if err := tx.Meetings().UpdateStatus(ctx, tx.DB(), m.ID(), m.Status()); err != nil {
			return err
		}

		ownerID = m.OwnerID()
		receipt = &BookingReceipt{
			MeetingID:   m.ID(),
			SlotID:      slot.ID(),
			Title:       m.Title().String(),
			SlotStart:   slot.TimeSlot().Start(),
			SlotEnd:     slot.TimeSlot().End(),
			ConfirmedAt: uc.clock.Now(),
		}
		return nil
	})
	if err != nil {
		return nil, classifyConfirmError(err, bookingToken)
	}

	slog.Info("booking confirmed",
		"meeting_id", receipt.MeetingID.String(),
		"slot_id", receipt.SlotID.String(),
		"token", bookingToken.Redacted())

	uc.dispatcher.Dispatch(notify.BookingConfirmed{
		MeetingID:   receipt.MeetingID,
		SlotID:      receipt.SlotID,
		OwnerID:     ownerID,
		Title:       receipt.Title,
		SlotStart:   receipt.SlotStart,
		SlotEnd:     receipt.SlotEnd,
		ConfirmedAt: receipt.ConfirmedAt,
	})

	return receipt, nil
}

func classifyConfirmError(err error, token meeting.BookingToken) error {
	switch {
	case errs.Is(err, ErrAlreadyConfirmedOrInvalid), errs.Is(err, ErrSlotUnavailable):
		return err
	default:
		slog.Error("booking confirmation failed",
			"token", token.Redacted(),
			"error", err.Error())
		return errs.Mark(err, ErrPersistenceFailure)
	}
}
