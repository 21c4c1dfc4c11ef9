// internal/app/features/accounts/handler.go
package accounts

import (
	"context"
	"encoding/json"
	"net/http"

	apierrors "github.com/dalemusser/huddle/internal/app/features/errors"
	"github.com/dalemusser/huddle/internal/app/features/teams"
	userstore "github.com/dalemusser/huddle/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// TeamStatusResolver is the narrow team capability this feature needs:
// the login response embeds the user's current team, if any.
type TeamStatusResolver interface {
	CurrentTeam(ctx context.Context, userID string) (*teams.Summary, error)
}

// Handler owns account operations: signup, login, profile updates, and
// photo upload.
type Handler struct {
	Store      *userstore.Store
	TeamStatus TeamStatusResolver
	ErrLog     *apierrors.ErrorLogger
	Log        *zap.Logger
}

// NewHandler constructs an accounts Handler.
func NewHandler(db *mongo.Database, teamStatus TeamStatusResolver, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:      userstore.New(db),
		TeamStatus: teamStatus,
		ErrLog:     errLog,
		Log:        logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
