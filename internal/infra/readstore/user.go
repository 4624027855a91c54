package readstore

import (
	"context"

	"meetslot/internal/infra"
	"meetslot/internal/infra/sqlc"
	"meetslot/internal/pkg/pgconv"
	"meetslot/internal/usecase/queries"
)

type UserReadQueries interface {
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
}

func NewUserReadStore(queries UserReadQueries) *UserReadStore {
	return &UserReadStore{
		queries: queries,
	}
}

func (r *UserReadStore) List(ctx context.Context, db sqlc.DBTX) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(row))
	}
	return views, nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
