// internal/app/features/accounts/profile.go
package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	userstore "github.com/dalemusser/huddle/internal/app/store/users"
	"github.com/dalemusser/huddle/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type updateProfileRequest struct {
	ID      string         `json:"id"`
	Updates map[string]any `json:"updates"`
}

// HandleUpdateProfile applies allow-listed profile field updates.
// PUT /update_profile
//
// Email and password are never updatable here. Requests whose updates
// contain only disallowed keys fail without touching the document.
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequest(w, "Invalid JSON body.")
		return
	}
	if req.ID == "" || len(req.Updates) == 0 {
		h.ErrLog.BadRequest(w, "Missing user ID or update fields.")
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		h.ErrLog.NotFound(w, "User not found.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.UpdateProfile(ctx, userID, req.Updates); err != nil {
		switch {
		case errors.Is(err, userstore.ErrNoValidFields):
			h.ErrLog.BadRequest(w, "No valid fields provided for update.")
		case errors.Is(err, userstore.ErrUserNotFound):
			h.ErrLog.NotFound(w, "User not found.")
		default:
			h.ErrLog.Internal(w, r, "profile update failed", err)
		}
		return
	}

	h.Log.Info("profile updated", zap.String("user_id", req.ID))

	writeJSON(w, http.StatusOK, map[string]any{"message": "Profile updated successfully."})
}
