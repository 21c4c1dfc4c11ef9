// internal/app/features/teams/join.go
package teams

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	teamstore "github.com/dalemusser/huddle/internal/app/store/teams"
	"github.com/dalemusser/huddle/internal/app/system/teamsize"
	"github.com/dalemusser/huddle/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleJoin appends the user to a team's member list.
// POST /join_group
//
// Check order matters: the single-team invariant is checked first, then
// existence, then capacity. The checks and the final push are separate
// store calls without a cross-document transaction; concurrent joins can
// race through them. Accepted gap; the member push itself is atomic.
func (h *Handler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequest(w, "Invalid JSON body.")
		return
	}
	if req.UserID == "" || req.GroupID == "" {
		h.ErrLog.BadRequest(w, "Missing user ID or group ID.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Store.FindByMember(ctx, req.UserID)
	if err != nil {
		h.ErrLog.Internal(w, r, "membership check failed", err)
		return
	}
	if existing != nil {
		h.ErrLog.Forbidden(w, "You are already a member of a team. Please leave your current team first.")
		return
	}

	groupID, err := primitive.ObjectIDFromHex(req.GroupID)
	if err != nil {
		h.ErrLog.NotFound(w, "Group not found.")
		return
	}

	team, err := h.Store.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, teamstore.ErrTeamNotFound) {
			h.ErrLog.NotFound(w, "Group not found.")
			return
		}
		h.ErrLog.Internal(w, r, "team lookup failed", err)
		return
	}

	if len(team.Members) >= teamsize.Capacity(team.PreferredSize) {
		h.ErrLog.Forbidden(w, "This team is already full.")
		return
	}

	if err := h.Store.AppendMember(ctx, groupID, req.UserID); err != nil {
		if errors.Is(err, teamstore.ErrTeamNotFound) {
			h.ErrLog.NotFound(w, "Group not found.")
			return
		}
		h.ErrLog.Internal(w, r, "member append failed", err)
		return
	}

	h.Log.Info("user joined team",
		zap.String("user_id", req.UserID),
		zap.String("group_id", req.GroupID))

	writeJSON(w, http.StatusOK, map[string]any{"message": "Successfully joined the group!"})
}
