// internal/app/features/teams/status.go
package teams

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/huddle/internal/app/system/timeouts"
)

// HandleTeamStatus reports whether the user belongs to a team, with the
// team summary when they do.
// POST /check_team_status
func (h *Handler) HandleTeamStatus(w http.ResponseWriter, r *http.Request) {
	var req userIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequest(w, "Invalid JSON body.")
		return
	}
	if req.UserID == "" {
		h.ErrLog.BadRequest(w, "Missing user ID.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	summary, err := h.CurrentTeam(ctx, req.UserID)
	if err != nil {
		h.ErrLog.Internal(w, r, "team status check failed", err)
		return
	}

	if summary == nil {
		writeJSON(w, http.StatusOK, map[string]any{"hasTeam": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hasTeam": true, "team": summary})
}
