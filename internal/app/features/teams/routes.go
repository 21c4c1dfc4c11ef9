// internal/app/features/teams/routes.go
package teams

import "github.com/go-chi/chi/v5"

// MountRoutes registers the team endpoints on the supplied router. The
// paths are flat because they are a contract with existing clients.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/create_group", h.HandleCreate)
	r.Post("/get_available_groups", h.HandleAvailable)
	r.Post("/join_group", h.HandleJoin)
	r.Post("/check_team_status", h.HandleTeamStatus)
}
