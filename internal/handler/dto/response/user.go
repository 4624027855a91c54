package response

import (
	"time"

	"meetslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	res := mapTo[UserResponse](v)
	return &res
}

func FromUserList(items []*queries.UserView) []*UserResponse {
	res := make([]*UserResponse, len(items))
	for i, it := range items {
		res[i] = FromUserView(it)
	}
	return res
}
