package request

import (
	"meetslot/internal/usecase/commands"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"required,email,max=255"`
}

func (r *CreateUserRequest) ToParams() commands.CreateUserParams {
	return commands.CreateUserParams{
		Name:  r.Name,
		Email: r.Email,
	}
}
