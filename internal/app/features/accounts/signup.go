// internal/app/features/accounts/signup.go
package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	userstore "github.com/dalemusser/huddle/internal/app/store/users"
	"github.com/dalemusser/huddle/internal/app/system/timeouts"
	"github.com/dalemusser/huddle/internal/domain/models"
	"go.uber.org/zap"
)

type signupRequest struct {
	FullName     string   `json:"fullName"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	University   string   `json:"university"`
	Branch       string   `json:"branch"`
	AcademicYear string   `json:"academicYear"`
	Skills       []string `json:"skills"`
}

// HandleSignup registers a new account.
// POST /signup
//
// The email is normalized to lowercase; uniqueness rides on the unique
// index. Unset profile fields get placeholder defaults in the store.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequest(w, "Invalid JSON body.")
		return
	}

	if req.FullName == "" || req.Email == "" || req.Password == "" {
		h.ErrLog.BadRequest(w, "Missing required fields (Full Name, Email, Password).")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user := models.User{
		FullName:    req.FullName,
		Email:       req.Email,
		College:     req.University,
		Department:  req.Branch,
		YearOfStudy: req.AcademicYear,
		Skills:      req.Skills,
	}

	created, err := h.Store.Create(ctx, user, req.Password)
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			h.ErrLog.Conflict(w, "Account with this email already exists.")
			return
		}
		h.ErrLog.Internal(w, r, "signup failed", err)
		return
	}

	h.Log.Info("account created",
		zap.String("user_id", created.ID.Hex()),
		zap.String("email", created.Email))

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("Account created for %s!", created.FullName),
		"id":      created.ID.Hex(),
	})
}
