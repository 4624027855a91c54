package converter

import (
	"fmt"

	"meetslot/internal/domain/user"
	"meetslot/internal/infra/sqlc"
	"meetslot/internal/pkg/pgconv"
)

func UserToInfra(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:        u.ID(),
		Name:      u.Name().Value(),
		Email:     u.Email().Value(),
		CreatedAt: pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func UserFromInfra(row sqlc.Users) (*user.User, error) {
	name, err := user.NewName(row.Name)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", row.ID, err)
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", row.ID, err)
	}
	return user.ReconstructUser(row.ID, name, email, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
