//go:build unit

package repository

import (
	"context"
	"testing"

	"meetslot/internal/domain/meeting"
	"meetslot/internal/infra"
	"meetslot/internal/infra/sqlc"
	"meetslot/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSlotWriteQueries struct {
	mock.Mock
}

func (m *MockSlotWriteQueries) CreateSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotParams) (sqlc.MeetingSlots, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.MeetingSlots), args.Error(1)
}

func (m *MockSlotWriteQueries) LockSlotByIDAndStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.LockSlotByIDAndStatusParams) (sqlc.MeetingSlots, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.MeetingSlots), args.Error(1)
}

func (m *MockSlotWriteQueries) UpdateSlotStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSlotStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestSlotRepository_LockAvailable(t *testing.T) {
	meetingID := uuid.New()
	row := builder.NewSlotBuilder(meetingID).BuildInfra()
	params := sqlc.LockSlotByIDAndStatusParams{ID: row.ID, MeetingID: meetingID, Status: "AVAILABLE"}

	tests := []struct {
		name      string
		mockRow   sqlc.MeetingSlots
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", mockRow: row},
		{name: "booked, foreign or unknown slot", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "statement cancelled", mockError: &pgconn.PgError{Code: "57014"}, wantKind: infra.KindTxAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockSlotWriteQueries)
			mockQueries.On("LockSlotByIDAndStatus", mock.Anything, mock.Anything, params).Return(tt.mockRow, tt.mockError).Once()

			s, err := NewSlotRepository(mockQueries).LockAvailable(context.Background(), nil, row.ID, meetingID)

			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, row.ID, s.ID())
				assert.True(t, s.IsAvailable())
			} else {
				assert.Nil(t, s)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestSlotRepository_Create(t *testing.T) {
	s, err := builder.NewSlotBuilder(uuid.New()).BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "check violation", mockError: &pgconn.PgError{Code: "23514"}, wantKind: infra.KindCheckViolated},
		{name: "meeting deleted", mockError: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockSlotWriteQueries)
			mockQueries.On("CreateSlot", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateSlotParams) bool {
				return p.ID == s.ID() && p.Status == "AVAILABLE" && p.StartTime.Valid && p.EndTime.Valid
			})).Return(sqlc.MeetingSlots{}, tt.mockError).Once()

			err := NewSlotRepository(mockQueries).Create(context.Background(), nil, s)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
		})
	}
}

func TestSlotRepository_UpdateStatus(t *testing.T) {
	id := uuid.New()
	mockQueries := new(MockSlotWriteQueries)
	mockQueries.On("UpdateSlotStatus", mock.Anything, mock.Anything, sqlc.UpdateSlotStatusParams{ID: id, Status: "BOOKED"}).
		Return(int64(1), nil).Once()

	assert.NoError(t, NewSlotRepository(mockQueries).UpdateStatus(context.Background(), nil, id, meeting.SlotStatusBooked))
	mockQueries.AssertExpectations(t)
}
