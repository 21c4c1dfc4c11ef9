// internal/app/features/accounts/photo.go
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

type photoRequest struct {
	UserID   string `json:"user_id"`
	PhotoB64 string `json:"photo_b64"`
}

// HandleUploadPhoto stores a base64 profile photo, overwriting any
// existing one. The payload is opaque; no format or size checks.
// POST /upload_profile_photo
func (h *Handler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	var req photoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequest(w, "Invalid JSON body.")
		return
	}
	if req.UserID == "" || req.PhotoB64 == "" {
		h.ErrLog.BadRequest(w, "Missing user ID or photo data.")
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		h.ErrLog.NotFound(w, "User not found.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.SetProfilePhoto(ctx, userID, req.PhotoB64); err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			h.ErrLog.NotFound(w, "User not found.")
			return
		}
		h.ErrLog.Internal(w, r, "photo upload failed", err)
		return
	}

	h.Log.Info("profile photo updated", zap.String("user_id", req.UserID))

	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Profile photo updated successfully.",
		"photo_url": req.PhotoB64,
	})
}
