// internal/app/features/teams/available.go
package teams

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/huddle/internal/app/system/teamsize"
	"github.com/dalemusser/huddle/internal/app/system/timeouts"
)

// HandleAvailable lists every team the user could join: teams they are
// not a member of whose member count is below the parsed capacity.
// POST /get_available_groups
//
// Creator display names are resolved in one batched lookup over the
// distinct creator ids of the candidate set. No ordering or pagination.
func (h *Handler) HandleAvailable(w http.ResponseWriter, r *http.Request) {
	var req userIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequest(w, "Invalid JSON body.")
		return
	}
	if req.UserID == "" {
		h.ErrLog.BadRequest(w, "Missing user ID.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	candidates, err := h.Store.ListNotMember(ctx, req.UserID)
	if err != nil {
		h.ErrLog.Internal(w, r, "available teams query failed", err)
		return
	}

	seen := map[string]bool{}
	creatorIDs := []string{}
	for _, t := range candidates {
		if !seen[t.CreatorUserID] {
			seen[t.CreatorUserID] = true
			creatorIDs = append(creatorIDs, t.CreatorUserID)
		}
	}

	names, err := h.Names.NamesByIDs(ctx, creatorIDs)
	if err != nil {
		h.ErrLog.Internal(w, r, "creator name lookup failed", err)
		return
	}

	listings := []Listing{}
	for _, t := range candidates {
		if len(t.Members) >= teamsize.Capacity(t.PreferredSize) {
			continue
		}
		creatorName, ok := names[t.CreatorUserID]
		if !ok {
			creatorName = "Unknown"
		}
		listings = append(listings, Listing{
			GroupID:        t.ID.Hex(),
			ProjectName:    t.Name,
			Description:    t.Description,
			RequiredSkills: t.RequiredSkill,
			PreferredSize:  t.PreferredSize,
			Timeline:       t.Timeline,
			CreatorUserID:  t.CreatorUserID,
			Members:        t.Members,
			CreatorName:    creatorName,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"groups": listings})
}
