package queries

import (
	"context"

	"meetslot/internal/infra/sqlc"
	"meetslot/internal/usecase/shared"
)

type UserQueries interface {
	ListUsers(ctx context.Context) ([]*UserView, error)
}

type UserReadStore interface {
	List(ctx context.Context, db sqlc.DBTX) ([]*UserView, error)
}

type userQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore UserReadStore
}

func NewUserQueries(uow shared.UnitOfWork, readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (q *userQueriesImpl) ListUsers(ctx context.Context) ([]*UserView, error) {
	var users []*UserView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		users, err = q.readStore.List(ctx, db)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
