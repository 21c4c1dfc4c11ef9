// internal/app/features/accounts/login.go
package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/huddle/internal/app/system/authutil"
	"github.com/dalemusser/huddle/internal/app/system/timeouts"
	"github.com/dalemusser/huddle/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// profileView is everything a client sees about a user: all attributes
// except the password hash.
type profileView struct {
	ID          string   `json:"id"`
	FullName    string   `json:"fullName"`
	Email       string   `json:"email"`
	College     string   `json:"college"`
	Department  string   `json:"department"`
	YearOfStudy string   `json:"year_of_study"`
	Skills      []string `json:"skills"`
	Bio         string   `json:"bio"`
	Phone       string   `json:"phone"`
	Interests   []string `json:"interests"`
	LinkedIn    string   `json:"linkedin"`
	GitHub      string   `json:"github"`
	PhotoURL    *string  `json:"profilePhotoUrl"`
}

func profileViewOf(u *models.User) profileView {
	return profileView{
		ID:          u.ID.Hex(),
		FullName:    u.FullName,
		Email:       u.Email,
		College:     u.College,
		Department:  u.Department,
		YearOfStudy: u.YearOfStudy,
		Skills:      u.Skills,
		Bio:         u.Bio,
		Phone:       u.Phone,
		Interests:   u.Interests,
		LinkedIn:    u.LinkedIn,
		GitHub:      u.GitHub,
		PhotoURL:    u.ProfilePhotoB64,
	}
}

// HandleLogin verifies credentials and returns the profile plus the
// user's current team, if any.
// POST /login
//
// Unknown email and wrong password produce the same 401; the response
// must not reveal which one it was.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequest(w, "Invalid JSON body.")
		return
	}
	if req.Email == "" || req.Password == "" {
		h.ErrLog.BadRequest(w, "Email and password are required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.Unauthorized(w, "Invalid email or password.")
			return
		}
		h.ErrLog.Internal(w, r, "login lookup failed", err)
		return
	}

	if !authutil.CheckPassword(user.Password, req.Password) {
		h.ErrLog.Unauthorized(w, "Invalid email or password.")
		return
	}

	// Team lookup failures degrade to "no team" rather than failing the
	// login; the client can re-check via /check_team_status.
	currentTeam, err := h.TeamStatus.CurrentTeam(ctx, user.ID.Hex())
	if err != nil {
		h.Log.Warn("team status lookup failed during login",
			zap.String("user_id", user.ID.Hex()),
			zap.Error(err))
		currentTeam = nil
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     fmt.Sprintf("Welcome back, %s!", user.FullName),
		"user":        profileViewOf(user),
		"currentTeam": currentTeam,
	})
}
