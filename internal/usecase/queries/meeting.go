package queries

import (
	"context"

	"meetslot/internal/domain/meeting"
	"meetslot/internal/infra"
	"meetslot/internal/infra/sqlc"
	"meetslot/internal/pkg/errs"
	"meetslot/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../../../tests/mock/queries/mock_queries.go -package=queriesmock meetslot/internal/usecase/queries MeetingQueries,UserQueries

var (
	ErrInvalidToken    = errs.New("invalid booking link")
	ErrMeetingNotFound = errs.New("meeting not found")
)

type MeetingQueries interface {
	ListMeetings(ctx context.Context) ([]*MeetingListItem, error)
	GetMeeting(ctx context.Context, id uuid.UUID) (*MeetingView, error)
	GetBookingView(ctx context.Context, token string) (*BookingView, error)
}

type MeetingReadStore interface {
	List(ctx context.Context, db sqlc.DBTX) ([]*MeetingListItem, error)
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*MeetingView, error)
	FindByToken(ctx context.Context, db sqlc.DBTX, token string) (*MeetingView, error)
	ListSlots(ctx context.Context, db sqlc.DBTX, meetingID uuid.UUID, status *meeting.SlotStatus) ([]SlotView, error)
}

type meetingQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore MeetingReadStore
}

func NewMeetingQueries(uow shared.UnitOfWork, readStore MeetingReadStore) MeetingQueries {
	return &meetingQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (q *meetingQueriesImpl) ListMeetings(ctx context.Context) ([]*MeetingListItem, error) {
	var items []*MeetingListItem
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		items, err = q.readStore.List(ctx, db)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (q *meetingQueriesImpl) GetMeeting(ctx context.Context, id uuid.UUID) (*MeetingView, error) {
	var view *MeetingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		m, err := q.readStore.FindByID(ctx, db, id)
		if err != nil {
			return err
		}
		slots, err := q.readStore.ListSlots(ctx, db, m.ID, nil)
		if err != nil {
			return err
		}
		m.Slots = slots
		view = m
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}
	return view, nil
}

// GetBookingView reads the meeting and its AVAILABLE slots from one snapshot,
// so a confirmed meeting is never shown next to a still-available slot list.
func (q *meetingQueriesImpl) GetBookingView(ctx context.Context, token string) (*BookingView, error) {
	if _, err := meeting.ParseBookingToken(token); err != nil {
		return nil, ErrInvalidToken
	}

	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		m, err := q.readStore.FindByToken(ctx, db, token)
		if err != nil {
			return err
		}
		available := meeting.SlotStatusAvailable
		slots, err := q.readStore.ListSlots(ctx, db, m.ID, &available)
		if err != nil {
			return err
		}
		view = &BookingView{Meeting: *m, AvailableSlots: slots}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return view, nil
}
