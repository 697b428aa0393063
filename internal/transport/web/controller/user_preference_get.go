package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/domain"
)

type UserPreferenceGet struct {
	Command command.Command[string, domain.UserPreference]
}

func (c UserPreferenceGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	pref, err := c.Command.Execute(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to get user preference", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pref); err != nil {
		logger.ErrorContext(ctx, "unable to write user preference to response", "error", err)
	}
}
