package commands

import (
	"context"

	"meetslot/internal/domain/user"
	"meetslot/internal/infra"
	"meetslot/internal/pkg/clock"
	"meetslot/internal/pkg/errs"
	"meetslot/internal/usecase/queries"
	"meetslot/internal/usecase/shared"
)

type CreateUserParams struct {
	Name  string `validate:"required,max=255"`
	Email string `validate:"required,email,max=255"`
}

type UserCommands interface {
	CreateUser(ctx context.Context, params CreateUserParams) (*queries.UserView, error)
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserUseCase(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userUseCaseImpl{uow: uow, clock: clk}
}

func (uc *userUseCaseImpl) CreateUser(ctx context.Context, params CreateUserParams) (*queries.UserView, error) {
	if err := validateStruct(params); err != nil {
		return nil, err
	}
	name, err := user.NewName(params.Name)
	if err != nil {
		return nil, invalid(err)
	}
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, invalid(err)
	}

	u := user.NewUser(name, email, uc.clock.Now())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateEmail)
		}
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}

	return &queries.UserView{
		ID:        u.ID(),
		Name:      u.Name().Value(),
		Email:     u.Email().Value(),
		CreatedAt: u.CreatedAt(),
	}, nil
}
