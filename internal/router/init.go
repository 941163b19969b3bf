package router

import (
	appuser "github.com/yudhapratama/userhub/internal/application"
	"github.com/yudhapratama/userhub/internal/container"
	domainservice "github.com/yudhapratama/userhub/internal/domain/service"
	pginfra "github.com/yudhapratama/userhub/internal/infrastructure/postgres"
	handlers "github.com/yudhapratama/userhub/internal/interface/http"
	"github.com/yudhapratama/userhub/internal/router/modules"
)

func buildUserModule() *modules.UserModule {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	repo := pginfra.NewUserRepository(container.GetPGPool())

	domain := domainservice.NewUserDomainService(repo, container.GetDispatcher(), logger)
	executor := appuser.NewRegisterUserExecutor(domain, logger)
	service := appuser.NewUserService(repo, executor, logger)
	search := &appuser.UserSearchService{ES: container.GetES(), Index: cfg.ESUsersIndex}

	listener := &appuser.UserEventListener{
		Rabbit:       container.GetRabbitPub(),
		Redis:        container.GetRedis(),
		ES:           container.GetES(),
		ESUsersIndex: cfg.ESUsersIndex,
		Logger:       logger,
	}
	listener.Register(container.GetDispatcher())

	handler := handlers.NewUserHandler(service, search, logger)
	return modules.NewUserModule(handler)
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(buildUserModule())
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(container.GetConfig().AppName)))
}
