package repository

import (
	"context"

	"meetslot/internal/domain/user"
	"meetslot/internal/infra"
	"meetslot/internal/infra/repository/converter"
	"meetslot/internal/infra/sqlc"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, db sqlc.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, db, converter.UserToInfra(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
