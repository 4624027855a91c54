//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"meetslot/internal/domain/meeting"
	"meetslot/internal/infra"
	"meetslot/internal/pkg/clock"
	"meetslot/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "0123456789abcdef0123456789abcdef"

var confirmedAt = time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

type bookingFixture struct {
	uow        *fakeUoW
	dispatcher *recordingDispatcher
	uc         BookingCommands
	meeting    *meeting.Meeting
	slot       *meeting.Slot
	token      meeting.BookingToken
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	token, err := meeting.ParseBookingToken(testToken)
	require.NoError(t, err)
	title, err := meeting.NewTitle("Quarterly sync")
	require.NoError(t, err)

	m := meeting.ReconstructMeeting(uuid.New(), title, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		uuid.New(), token, meeting.StatusOpen, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))

	ts, err := meeting.NewTimeSlot(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	s := meeting.ReconstructSlot(uuid.New(), m.ID(), ts, meeting.SlotStatusAvailable, m.CreatedAt())

	uow := newFakeUoW()
	dispatcher := &recordingDispatcher{}
	return &bookingFixture{
		uow:        uow,
		dispatcher: dispatcher,
		uc:         NewBookingUseCase(uow, dispatcher, clock.NewMockClock(confirmedAt)),
		meeting:    m,
		slot:       s,
		token:      token,
	}
}

func notFound() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows)
}

func TestConfirmBooking_Success(t *testing.T) {
	f := newBookingFixture(t)
	meetings, slots := f.uow.tx.meetings, f.uow.tx.slots

	meetings.On("LockOpenByToken", mock.Anything, mock.Anything, f.token).Return(f.meeting, nil).Once()
	slots.On("LockAvailable", mock.Anything, mock.Anything, f.slot.ID(), f.meeting.ID()).Return(f.slot, nil).Once()
	slots.On("UpdateStatus", mock.Anything, mock.Anything, f.slot.ID(), meeting.SlotStatusBooked).Return(nil).Once()
	meetings.On("UpdateStatus", mock.Anything, mock.Anything, f.meeting.ID(), meeting.StatusConfirmed).Return(nil).Once()

	receipt, err := f.uc.ConfirmBooking(context.Background(), testToken, f.slot.ID())

	require.NoError(t, err)
	assert.Equal(t, &BookingReceipt{
		MeetingID:   f.meeting.ID(),
		SlotID:      f.slot.ID(),
		Title:       "Quarterly sync",
		SlotStart:   f.slot.TimeSlot().Start(),
		SlotEnd:     f.slot.TimeSlot().End(),
		ConfirmedAt: confirmedAt,
	}, receipt)

	assert.Equal(t, 1, f.uow.onceCalls, "confirm runs in a single-attempt transaction")
	assert.Equal(t, 0, f.uow.withinCalls)

	events := f.dispatcher.dispatched()
	require.Len(t, events, 1)
	assert.Equal(t, f.meeting.ID(), events[0].MeetingID)
	assert.Equal(t, f.slot.ID(), events[0].SlotID)
	assert.Equal(t, f.meeting.OwnerID(), events[0].OwnerID)
	assert.Equal(t, confirmedAt, events[0].ConfirmedAt)

	meetings.AssertExpectations(t)
	slots.AssertExpectations(t)
}

func TestConfirmBooking_RejectedBeforeStore(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		slotID  uuid.UUID
		wantErr error
	}{
		{name: "nil slot id", token: testToken, slotID: uuid.Nil, wantErr: ErrValidation},
		{name: "empty token", token: "", slotID: uuid.New(), wantErr: ErrAlreadyConfirmedOrInvalid},
		{name: "short token", token: "abc123", slotID: uuid.New(), wantErr: ErrAlreadyConfirmedOrInvalid},
		{name: "uppercase token", token: "0123456789ABCDEF0123456789ABCDEF", slotID: uuid.New(), wantErr: ErrAlreadyConfirmedOrInvalid},
		{name: "non-hex token", token: "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", slotID: uuid.New(), wantErr: ErrAlreadyConfirmedOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)

			receipt, err := f.uc.ConfirmBooking(context.Background(), tt.token, tt.slotID)

			assert.Nil(t, receipt)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, 0, f.uow.onceCalls)
			assert.Empty(t, f.dispatcher.dispatched())
		})
	}
}

func TestConfirmBooking_MeetingNotOpen(t *testing.T) {
	// Unknown token and already-confirmed meeting are indistinguishable: the
	// lock query only matches OPEN meetings.
	f := newBookingFixture(t)
	f.uow.tx.meetings.On("LockOpenByToken", mock.Anything, mock.Anything, f.token).Return(nil, notFound()).Once()

	receipt, err := f.uc.ConfirmBooking(context.Background(), testToken, f.slot.ID())

	assert.Nil(t, receipt)
	assert.True(t, errs.Is(err, ErrAlreadyConfirmedOrInvalid))
	f.uow.tx.slots.AssertNotCalled(t, "LockAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.uow.tx.meetings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.dispatcher.dispatched())
}

func TestConfirmBooking_SlotUnavailable(t *testing.T) {
	// Covers a slot of another meeting, a booked slot and an unknown slot id.
	f := newBookingFixture(t)
	foreignSlot := uuid.New()
	f.uow.tx.meetings.On("LockOpenByToken", mock.Anything, mock.Anything, f.token).Return(f.meeting, nil).Once()
	f.uow.tx.slots.On("LockAvailable", mock.Anything, mock.Anything, foreignSlot, f.meeting.ID()).Return(nil, notFound()).Once()

	receipt, err := f.uc.ConfirmBooking(context.Background(), testToken, foreignSlot)

	assert.Nil(t, receipt)
	assert.True(t, errs.Is(err, ErrSlotUnavailable))
	f.uow.tx.slots.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.uow.tx.meetings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.dispatcher.dispatched())
}

func TestConfirmBooking_DomainRejectsForeignSlot(t *testing.T) {
	f := newBookingFixture(t)
	stray := meeting.ReconstructSlot(f.slot.ID(), uuid.New(), f.slot.TimeSlot(), meeting.SlotStatusAvailable, f.slot.CreatedAt())

	f.uow.tx.meetings.On("LockOpenByToken", mock.Anything, mock.Anything, f.token).Return(f.meeting, nil).Once()
	f.uow.tx.slots.On("LockAvailable", mock.Anything, mock.Anything, f.slot.ID(), f.meeting.ID()).Return(stray, nil).Once()

	_, err := f.uc.ConfirmBooking(context.Background(), testToken, f.slot.ID())

	assert.True(t, errs.Is(err, ErrSlotUnavailable))
	assert.Equal(t, meeting.StatusOpen, f.meeting.Status())
	assert.Empty(t, f.dispatcher.dispatched())
}

func TestConfirmBooking_PersistenceFailures(t *testing.T) {
	deadlock := infra.WrapRepoErr("lock meeting", &pgconn.PgError{Code: "40P01"})
	lockTimeout := infra.WrapRepoErr("lock slot", &pgconn.PgError{Code: "55P03"})

	tests := []struct {
		name  string
		setup func(f *bookingFixture)
	}{
		{
			name: "deadlock while locking meeting",
			setup: func(f *bookingFixture) {
				f.uow.tx.meetings.On("LockOpenByToken", mock.Anything, mock.Anything, f.token).Return(nil, deadlock)
			},
		},
		{
			name: "lock timeout on slot",
			setup: func(f *bookingFixture) {
				f.uow.tx.meetings.On("LockOpenByToken", mock.Anything, mock.Anything, f.token).Return(f.meeting, nil)
				f.uow.tx.slots.On("LockAvailable", mock.Anything, mock.Anything, f.slot.ID(), f.meeting.ID()).Return(nil, lockTimeout)
			},
		},
		{
			name: "meeting update fails",
			setup: func(f *bookingFixture) {
				f.uow.tx.meetings.On("LockOpenByToken", mock.Anything, mock.Anything, f.token).Return(f.meeting, nil)
				f.uow.tx.slots.On("LockAvailable", mock.Anything, mock.Anything, f.slot.ID(), f.meeting.ID()).Return(f.slot, nil)
				f.uow.tx.slots.On("UpdateStatus", mock.Anything, mock.Anything, f.slot.ID(), meeting.SlotStatusBooked).Return(nil)
				f.uow.tx.meetings.On("UpdateStatus", mock.Anything, mock.Anything, f.meeting.ID(), meeting.StatusConfirmed).
					Return(infra.WrapRepoErr("update", assert.AnError))
			},
		},
		{
			name: "commit fails",
			setup: func(f *bookingFixture) {
				f.uow.commitErr = assert.AnError
				f.uow.tx.meetings.On("LockOpenByToken", mock.Anything, mock.Anything, f.token).Return(f.meeting, nil)
				f.uow.tx.slots.On("LockAvailable", mock.Anything, mock.Anything, f.slot.ID(), f.meeting.ID()).Return(f.slot, nil)
				f.uow.tx.slots.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
				f.uow.tx.meetings.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			tt.setup(f)

			receipt, err := f.uc.ConfirmBooking(context.Background(), testToken, f.slot.ID())

			assert.Nil(t, receipt)
			assert.True(t, errs.Is(err, ErrPersistenceFailure), "got %v", err)
			assert.False(t, errs.Is(err, ErrSlotUnavailable))
			assert.Equal(t, 1, f.uow.onceCalls, "confirm is never retried")
			assert.Empty(t, f.dispatcher.dispatched(), "no notification without a commit")
		})
	}
}
