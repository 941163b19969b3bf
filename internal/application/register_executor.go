package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/userhub/internal/domain/entity"
	"github.com/yudhapratama/userhub/internal/domain/service"
)

// RegisterUserExecutor runs the registration use case. Unlike the plain
// CRUD paths on UserService, an executor orchestrates a multi-step flow:
// domain rules, persistence and event publication. Richer registration
// steps (risk checks, initial grants) belong here, not in the facade.
type RegisterUserExecutor struct {
	domain *service.UserDomainService
	logger *logrus.Logger
}

func NewRegisterUserExecutor(domain *service.UserDomainService, logger *logrus.Logger) *RegisterUserExecutor {
	return &RegisterUserExecutor{domain: domain, logger: logger}
}

// Execute registers the user described by cmd. The commit happens before
// the UserCreated event is dispatched; downstream subscriber failures are
// isolated and cannot invalidate the persisted user.
func (e *RegisterUserExecutor) Execute(ctx context.Context, cmd CreateUserCommand) (*entity.User, error) {
	e.logger.WithField("username", cmd.Username).Info("executing user registration")

	u, err := e.domain.RegisterUser(ctx, cmd.Username, cmd.Email, cmd.Phone)
	if err != nil {
		return nil, err
	}

	e.logger.WithField("user_id", u.ID).Info("user registration completed")
	return u, nil
}
