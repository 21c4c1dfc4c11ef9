// internal/app/features/teams/create.go
package teams

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	teamstore "github.com/dalemusser/huddle/internal/app/store/teams"
	"github.com/dalemusser/huddle/internal/app/system/timeouts"
	"github.com/dalemusser/huddle/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate creates a new team with the creator as its first member.
// POST /create_group
//
// It deliberately does not check whether the creator already belongs to
// another team; that invariant is only enforced on join.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequest(w, "Invalid JSON body.")
		return
	}

	if req.TeamName == "" || req.ProjectDescription == "" || req.UserID == "" {
		h.ErrLog.BadRequest(w, "Team Name, Project Description, and User ID are required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	team := models.Team{
		Name:          req.TeamName,
		Description:   req.ProjectDescription,
		RequiredSkill: splitSkills(req.SkillsNeeded),
		PreferredSize: req.TeamSize,
		Timeline:      req.Timeline,
		CreatorUserID: req.UserID,
	}

	created, err := h.Store.Create(ctx, team)
	if err != nil {
		if errors.Is(err, teamstore.ErrDuplicateTeamName) {
			h.ErrLog.Conflict(w, fmt.Sprintf("A team with the name '%s' already exists. Please choose a different name.", req.TeamName))
			return
		}
		h.ErrLog.Internal(w, r, "team create failed", err)
		return
	}

	h.Log.Info("team created",
		zap.String("team", created.Name),
		zap.String("creator_user_id", created.CreatorUserID),
		zap.String("group_id", created.ID.Hex()))

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("Team '%s' created successfully!", created.Name),
		"groupId": created.ID.Hex(),
	})
}
