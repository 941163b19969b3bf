package application

import (
	"github.com/yudhapratama/userhub/internal/domain/entity"
)

// CreateUserCommand is the validated intent to register a new user.
type CreateUserCommand struct {
	Username string
	Email    string
	Phone    string
}

// UpdateUserCommand is a partial update. A nil field means "leave
// untouched"; a non-nil field overwrites, even with its zero value. The
// distinction matters: clearing a phone number and omitting it are
// different requests.
type UpdateUserCommand struct {
	ID     string
	Email  *string
	Phone  *string
	Status *entity.Status
}
