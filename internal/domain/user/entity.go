package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an organizer. Records are immutable once created.
type User struct {
	id        uuid.UUID
	name      Name
	email     Email
	createdAt time.Time
}

func NewUser(name Name, email Email, now time.Time) *User {
	return &User{
		id:        uuid.New(),
		name:      name,
		email:     email,
		createdAt: now,
	}
}

func ReconstructUser(id uuid.UUID, name Name, email Email, createdAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
