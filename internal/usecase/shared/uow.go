package shared

import (
	"context"

	"meetslot/internal/domain/meeting"
	"meetslot/internal/domain/user"
	"meetslot/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinOnce: Full transaction, single attempt. Retryable aborts are returned to the caller.
	WithinOnce(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only snapshot for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	Meetings() MeetingRepository
	Slots() SlotRepository
	DB() sqlc.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, u *user.User) error
}

type MeetingRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, m *meeting.Meeting) error
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*meeting.Meeting, error)
	LockOpenByToken(ctx context.Context, db sqlc.DBTX, token meeting.BookingToken) (*meeting.Meeting, error)
	UpdateStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status meeting.Status) error
}

type SlotRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, s *meeting.Slot) error
	LockAvailable(ctx context.Context, db sqlc.DBTX, slotID, meetingID uuid.UUID) (*meeting.Slot, error)
	UpdateStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status meeting.SlotStatus) error
}
