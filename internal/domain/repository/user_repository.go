package repository

import (
	"context"
	"errors"

	"github.com/yudhapratama/userhub/internal/domain/entity"
)

var (
	// ErrNotFound is returned when an id or username based lookup
	// resolves to no row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert violates the username
	// uniqueness constraint. The domain service translates it into its
	// business error; it never reaches callers raw.
	ErrDuplicate = errors.New("duplicate")
)

// UserRepository is the persistence contract for the user aggregate.
// Implementations assign ID, CreatedAt and UpdatedAt on Create and
// refresh UpdatedAt on Update. Any error other than ErrNotFound and
// ErrDuplicate signals an infrastructure failure.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	DeleteByID(ctx context.Context, id string) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
