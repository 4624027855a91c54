package readstore

import (
	"context"

	"meetslot/internal/domain/meeting"
	"meetslot/internal/infra"
	"meetslot/internal/infra/sqlc"
	"meetslot/internal/pkg/pgconv"
	"meetslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type MeetingReadQueries interface {
	FindMeetingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Meetings, error)
	FindMeetingByToken(ctx context.Context, db sqlc.DBTX, bookingToken string) (sqlc.Meetings, error)
	ListMeetingsWithOwner(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListMeetingsWithOwnerRow, error)
	ListSlotsByMeeting(ctx context.Context, db sqlc.DBTX, meetingID uuid.UUID) ([]sqlc.MeetingSlots, error)
	ListSlotsByMeetingAndStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSlotsByMeetingAndStatusParams) ([]sqlc.MeetingSlots, error)
}

type MeetingReadStore struct {
	queries MeetingReadQueries
}

func NewMeetingReadStore(queries MeetingReadQueries) *MeetingReadStore {
	return &MeetingReadStore{
		queries: queries,
	}
}

func (r *MeetingReadStore) List(ctx context.Context, db sqlc.DBTX) ([]*queries.MeetingListItem, error) {
	rows, err := r.queries.ListMeetingsWithOwner(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meetings", err)
	}

	items := make([]*queries.MeetingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.MeetingListItem{
			ID:          row.ID,
			Title:       row.Title,
			MeetingTime: pgconv.TimeFromPgtype(row.MeetingTime),
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			Owner: queries.OwnerSummary{
				ID:    row.UserID,
				Name:  row.UserName,
				Email: row.UserEmail,
			},
		})
	}
	return items, nil
}

func (r *MeetingReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.MeetingView, error) {
	row, err := r.queries.FindMeetingByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find meeting by ID", err)
	}
	return toMeetingView(row), nil
}

func (r *MeetingReadStore) FindByToken(ctx context.Context, db sqlc.DBTX, token string) (*queries.MeetingView, error) {
	row, err := r.queries.FindMeetingByToken(ctx, db, token)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find meeting by booking token", err)
	}
	return toMeetingView(row), nil
}

// ListSlots returns every slot of the meeting, or only those in status when it is non-nil.
func (r *MeetingReadStore) ListSlots(ctx context.Context, db sqlc.DBTX, meetingID uuid.UUID, status *meeting.SlotStatus) ([]queries.SlotView, error) {
	var (
		rows []sqlc.MeetingSlots
		err  error
	)
	if status != nil {
		rows, err = r.queries.ListSlotsByMeetingAndStatus(ctx, db, sqlc.ListSlotsByMeetingAndStatusParams{
			MeetingID: meetingID,
			Status:    status.String(),
		})
	} else {
		rows, err = r.queries.ListSlotsByMeeting(ctx, db, meetingID)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}

	views := make([]queries.SlotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.SlotView{
			ID:        row.ID,
			MeetingID: row.MeetingID,
			StartTime: pgconv.TimeFromPgtype(row.StartTime),
			EndTime:   pgconv.TimeFromPgtype(row.EndTime),
			Status:    row.Status,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func toMeetingView(row sqlc.Meetings) *queries.MeetingView {
	return &queries.MeetingView{
		ID:          row.ID,
		Title:       row.Title,
		MeetingTime: pgconv.TimeFromPgtype(row.MeetingTime),
		OwnerID:     row.UserID,
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		Slots:       []queries.SlotView{},
	}
}
