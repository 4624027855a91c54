package repository

import (
	"context"

	"meetslot/internal/domain/meeting"
	"meetslot/internal/infra"
	"meetslot/internal/infra/repository/converter"
	"meetslot/internal/infra/sqlc"

	"github.com/google/uuid"
)

type SlotWriteQueries interface {
	CreateSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotParams) (sqlc.MeetingSlots, error)
	LockSlotByIDAndStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.LockSlotByIDAndStatusParams) (sqlc.MeetingSlots, error)
	UpdateSlotStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSlotStatusParams) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
}

func NewSlotRepository(queries SlotWriteQueries) *SlotRepository {
	return &SlotRepository{
		queries: queries,
	}
}

func (r *SlotRepository) Create(ctx context.Context, db sqlc.DBTX, s *meeting.Slot) error {
	if _, err := r.queries.CreateSlot(ctx, db, converter.SlotToInfra(s)); err != nil {
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

// LockAvailable locks the slot only if it belongs to meetingID and is still AVAILABLE.
func (r *SlotRepository) LockAvailable(ctx context.Context, db sqlc.DBTX, slotID, meetingID uuid.UUID) (*meeting.Slot, error) {
	row, err := r.queries.LockSlotByIDAndStatus(ctx, db, sqlc.LockSlotByIDAndStatusParams{
		ID:        slotID,
		MeetingID: meetingID,
		Status:    meeting.SlotStatusAvailable.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock available slot", err)
	}

	s, err := converter.SlotFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert slot row", err, infra.KindDBFailure)
	}
	return s, nil
}

func (r *SlotRepository) UpdateStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status meeting.SlotStatus) error {
	affected, err := r.queries.UpdateSlotStatus(ctx, db, sqlc.UpdateSlotStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update slot status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("slot not found for status update", nil, infra.KindNotFound)
	}
	return nil
}
