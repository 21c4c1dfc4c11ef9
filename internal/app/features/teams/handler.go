// internal/app/features/teams/handler.go
package teams

import (
	"context"
	"encoding/json"
	"net/http"

	apierrors "github.com/dalemusser/huddle/internal/app/features/errors"
	teamstore "github.com/dalemusser/huddle/internal/app/store/teams"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// NameResolver is the narrow account capability this feature needs: batch
// resolution of user ids to display names for team listings. Implemented
// by the user store.
type NameResolver interface {
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

// Handler coordinates team creation, discovery, and membership.
type Handler struct {
	Store  *teamstore.Store
	Names  NameResolver
	ErrLog *apierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a teams Handler.
func NewHandler(db *mongo.Database, names NameResolver, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  teamstore.New(db),
		Names:  names,
		ErrLog: errLog,
		Log:    logger,
	}
}

// CurrentTeam returns the summary of the user's team, or nil when the
// user is on no team. Used by /check_team_status and by the accounts
// feature when building the login response.
func (h *Handler) CurrentTeam(ctx context.Context, userID string) (*Summary, error) {
	t, err := h.Store.FindByMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	s := SummaryOf(*t)
	return &s, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
