package router

import (
	"github.com/formgate/formgate/internal/application"
	"github.com/formgate/formgate/internal/container"
	pginfra "github.com/formgate/formgate/internal/infrastructure/postgres"
	handlers "github.com/formgate/formgate/internal/interface/http"
	"github.com/formgate/formgate/internal/router/modules"
)

// InitModules builds all feature modules from container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	authSvc := application.NewAuthService(
		userRepo,
		container.GetVerifier(),
		container.GetJWT(),
		container.GetLogger(),
	)
	authHandler := handlers.NewAuthHandler(authSvc, container.GetLogger())
	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))

	formRepo := pginfra.NewFormRepository(container.GetPGPool())
	formSvc := application.NewFormService(formRepo, container.GetLogger())
	formHandler := handlers.NewFormHandler(formSvc, container.GetLogger())
	r.Add(modules.NewFormModule(formHandler))

	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
