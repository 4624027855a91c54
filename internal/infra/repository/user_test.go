//go:build unit

package repository

import (
	"context"
	"testing"

	"meetslot/internal/infra"
	"meetslot/internal/infra/sqlc"
	"meetslot/tests/common/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestUserRepository_Create(t *testing.T) {
	u, err := builder.NewUserBuilder().WithEmail("Someone@Example.com").BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockError error
		wantKind  *infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "duplicate email", mockError: &pgconn.PgError{Code: "23505"}, wantKind: kindPtr(infra.KindDuplicateKey)},
		{name: "database error", mockError: assert.AnError, wantKind: kindPtr(infra.KindDBFailure)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, sqlc.CreateUserParams{
				ID:        u.ID(),
				Name:      "Test User",
				Email:     "someone@example.com",
				CreatedAt: builder.NewUserBuilder().BuildInfra().CreatedAt,
			}).Return(sqlc.Users{}, tt.mockError).Once()

			repo := NewUserRepository(mockQueries)
			err := repo.Create(context.Background(), nil, u)

			if tt.wantKind == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, *tt.wantKind), "got %v", err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func kindPtr(k infra.RepositoryErrorKind) *infra.RepositoryErrorKind {
	return &k
}
