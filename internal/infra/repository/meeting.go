package repository

import (
	"context"

	"meetslot/internal/domain/meeting"
	"meetslot/internal/infra"
	"meetslot/internal/infra/repository/converter"
	"meetslot/internal/infra/sqlc"

	"github.com/google/uuid"
)

type MeetingWriteQueries interface {
	CreateMeeting(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMeetingParams) (sqlc.Meetings, error)
	FindMeetingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Meetings, error)
	LockMeetingByTokenAndStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.LockMeetingByTokenAndStatusParams) (sqlc.Meetings, error)
	UpdateMeetingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMeetingStatusParams) (int64, error)
}

type MeetingRepository struct {
	queries MeetingWriteQueries
}

func NewMeetingRepository(queries MeetingWriteQueries) *MeetingRepository {
	return &MeetingRepository{
		queries: queries,
	}
}

func (r *MeetingRepository) Create(ctx context.Context, db sqlc.DBTX, m *meeting.Meeting) error {
	if _, err := r.queries.CreateMeeting(ctx, db, converter.MeetingToInfra(m)); err != nil {
		return infra.WrapRepoErr("failed to create meeting", err)
	}
	return nil
}

func (r *MeetingRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*meeting.Meeting, error) {
	row, err := r.queries.FindMeetingByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find meeting by ID", err)
	}
	return toMeeting(row)
}

// LockOpenByToken takes a row lock on the meeting only while it is OPEN.
// A miss means unknown token or already confirmed; no lock is retained.
func (r *MeetingRepository) LockOpenByToken(ctx context.Context, db sqlc.DBTX, token meeting.BookingToken) (*meeting.Meeting, error) {
	row, err := r.queries.LockMeetingByTokenAndStatus(ctx, db, sqlc.LockMeetingByTokenAndStatusParams{
		BookingToken: token.String(),
		Status:       meeting.StatusOpen.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock open meeting", err)
	}
	return toMeeting(row)
}

func (r *MeetingRepository) UpdateStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status meeting.Status) error {
	affected, err := r.queries.UpdateMeetingStatus(ctx, db, sqlc.UpdateMeetingStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update meeting status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("meeting not found for status update", nil, infra.KindNotFound)
	}
	return nil
}

func toMeeting(row sqlc.Meetings) (*meeting.Meeting, error) {
	m, err := converter.MeetingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert meeting row", err, infra.KindDBFailure)
	}
	return m, nil
}
