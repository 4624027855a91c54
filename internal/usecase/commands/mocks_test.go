//go:build unit

package commands

import (
	"context"
	"sync"

	"meetslot/internal/domain/meeting"
	"meetslot/internal/domain/user"
	"meetslot/internal/infra/sqlc"
	"meetslot/internal/usecase/notify"
	"meetslot/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, db sqlc.DBTX, u *user.User) error {
	return m.Called(ctx, db, u).Error(0)
}

type MockMeetingRepository struct {
	mock.Mock
}

func (m *MockMeetingRepository) Create(ctx context.Context, db sqlc.DBTX, mt *meeting.Meeting) error {
	return m.Called(ctx, db, mt).Error(0)
}

func (m *MockMeetingRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*meeting.Meeting, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meeting.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) LockOpenByToken(ctx context.Context, db sqlc.DBTX, token meeting.BookingToken) (*meeting.Meeting, error) {
	args := m.Called(ctx, db, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meeting.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) UpdateStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status meeting.Status) error {
	return m.Called(ctx, db, id, status).Error(0)
}

type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) Create(ctx context.Context, db sqlc.DBTX, s *meeting.Slot) error {
	return m.Called(ctx, db, s).Error(0)
}

func (m *MockSlotRepository) LockAvailable(ctx context.Context, db sqlc.DBTX, slotID, meetingID uuid.UUID) (*meeting.Slot, error) {
	args := m.Called(ctx, db, slotID, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meeting.Slot), args.Error(1)
}

func (m *MockSlotRepository) UpdateStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status meeting.SlotStatus) error {
	return m.Called(ctx, db, id, status).Error(0)
}

type fakeTx struct {
	users    *MockUserRepository
	meetings *MockMeetingRepository
	slots    *MockSlotRepository
}

func (t *fakeTx) Users() shared.UserRepository       { return t.users }
func (t *fakeTx) Meetings() shared.MeetingRepository { return t.meetings }
func (t *fakeTx) Slots() shared.SlotRepository       { return t.slots }
func (t *fakeTx) DB() sqlc.DBTX                      { return nil }

// fakeUoW runs fn against fakeTx and reports commitErr when fn succeeds.
type fakeUoW struct {
	tx          *fakeTx
	commitErr   error
	withinCalls int
	onceCalls   int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		users:    new(MockUserRepository),
		meetings: new(MockMeetingRepository),
		slots:    new(MockSlotRepository),
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.withinCalls++
	return u.run(ctx, fn)
}

func (u *fakeUoW) WithinOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.onceCalls++
	return u.run(ctx, fn)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := fn(ctx, u.tx); err != nil {
		return err
	}
	return u.commitErr
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []notify.BookingConfirmed
}

func (d *recordingDispatcher) Dispatch(event notify.BookingConfirmed) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
}

func (d *recordingDispatcher) dispatched() []notify.BookingConfirmed {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]notify.BookingConfirmed(nil), d.events...)
}
