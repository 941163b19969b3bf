package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/userhub/internal/domain/entity"
	"github.com/yudhapratama/userhub/internal/domain/event"
	"github.com/yudhapratama/userhub/internal/domain/repository"
)

// ErrDuplicateUsername is returned when registration targets a username
// that is already taken.
var ErrDuplicateUsername = errors.New("username already exists")

// Publisher is the slice of the event dispatcher the domain needs.
type Publisher interface {
	Publish(e event.Event)
}

// UserDomainService owns creation of the user aggregate and the domain
// rules that span it, such as username uniqueness.
type UserDomainService struct {
	repo      repository.UserRepository
	publisher Publisher
	logger    *logrus.Logger
}

func NewUserDomainService(repo repository.UserRepository, publisher Publisher, logger *logrus.Logger) *UserDomainService {
	return &UserDomainService{repo: repo, publisher: publisher, logger: logger}
}

// RegisterUser validates the uniqueness rule, persists a new enabled user
// and publishes a UserCreated event. The event is published only after the
// row is committed; publishing is fire and forget, so a subscriber failure
// never rolls back the registration.
//
// The exists check and the insert are not one atomic step. The users table
// carries a unique constraint on username as a backstop, and a violation
// there is translated into ErrDuplicateUsername.
func (s *UserDomainService) RegisterUser(ctx context.Context, username, email, phone string) (*entity.User, error) {
	s.logger.WithField("username", username).Info("registering new user")

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateUsername
	}

	u := &entity.User{
		Username: username,
		Email:    email,
		Phone:    phone,
	}
	u.Enable()

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the race between the exists check and the insert.
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	s.publisher.Publish(event.NewUserCreated(u.ID, u.Username, u.Email))

	s.logger.WithField("user_id", u.ID).Info("user registered, event published")
	return u, nil
}

// CanDelete is an extension point for future deletion rules, for example
// refusing to delete users with open orders. No such rule exists yet.
func (s *UserDomainService) CanDelete(ctx context.Context, id string) bool {
	return true
}
