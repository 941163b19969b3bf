package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/userhub/internal/domain/entity"
	"github.com/yudhapratama/userhub/internal/domain/repository"
	"github.com/yudhapratama/userhub/internal/domain/service"
)

var (
	// ErrUserNotFound is returned when an id does not resolve to a user.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername mirrors the domain rule for callers of this
	// package.
	ErrDuplicateUsername = service.ErrDuplicateUsername
)

// UserService is the thin facade over the user use cases. Simple CRUD is
// done directly against the repository; registration is delegated to the
// executor because it spans domain rules and event publication.
type UserService struct {
	repo     repository.UserRepository
	register *RegisterUserExecutor
	logger   *logrus.Logger
}

func NewUserService(repo repository.UserRepository, register *RegisterUserExecutor, logger *logrus.Logger) *UserService {
	return &UserService{repo: repo, register: register, logger: logger}
}

// CreateUser registers a new user via the registration executor.
func (s *UserService) CreateUser(ctx context.Context, cmd CreateUserCommand) (*entity.User, error) {
	return s.register.Execute(ctx, cmd)
}

// UpdateUser applies a partial update. Only fields set on the command are
// touched; nil fields keep their stored value. Username is immutable and
// not part of the command at all.
func (s *UserService) UpdateUser(ctx context.Context, cmd UpdateUserCommand) (*entity.User, error) {
	u, err := s.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if cmd.Email != nil {
		u.Email = *cmd.Email
	}
	if cmd.Phone != nil {
		u.Phone = *cmd.Phone
	}
	if cmd.Status != nil {
		u.Status = *cmd.Status
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	s.logger.WithField("user_id", u.ID).Info("user updated")
	return u, nil
}

// GetUserByID fetches a single user.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetAllUsers lists every user.
func (s *UserService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	return s.repo.FindAll(ctx)
}

// DeleteUser removes the user with the given id. Deleting an unknown id
// is ErrUserNotFound and leaves the store unchanged.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.logger.WithField("user_id", id).Info("user deleted")
	return nil
}
