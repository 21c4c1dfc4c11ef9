// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	accountsfeature "github.com/dalemusser/huddle/internal/app/features/accounts"
	errorsfeature "github.com/dalemusser/huddle/internal/app/features/errors"
	healthfeature "github.com/dalemusser/huddle/internal/app/features/health"
	teamsfeature "github.com/dalemusser/huddle/internal/app/features/teams"
	userstore "github.com/dalemusser/huddle/internal/app/store/users"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. Huddle mounts a flat JSON API:
// account endpoints, team endpoints, and a health check. The teams
// feature receives the user store only through the narrow NameResolver
// capability, and the accounts feature sees the teams feature only as a
// TeamStatusResolver.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	// Expected failures are handled per endpoint; Recoverer keeps an
	// unexpected panic in one request from taking the process down.
	r.Use(middleware.Recoverer)

	healthHandler := healthfeature.NewHandler(deps.HuddleMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	teamsHandler := teamsfeature.NewHandler(deps.HuddleMongoDatabase, userstore.New(deps.HuddleMongoDatabase), errLog, logger)
	teamsfeature.MountRoutes(r, teamsHandler)

	accountsHandler := accountsfeature.NewHandler(deps.HuddleMongoDatabase, teamsHandler, errLog, logger)
	accountsfeature.MountRoutes(r, accountsHandler)

	return r, nil
}
