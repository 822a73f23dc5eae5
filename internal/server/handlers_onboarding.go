package server

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/app-recommender/internal/onboarding"
	"github.com/jonathan/app-recommender/internal/server/middleware"
	"github.com/jonathan/app-recommender/internal/types"
)

// successBody is returned by the onboarding write endpoints.
var successBody = map[string]bool{"success": true}

// handleSaveInterests stores the caller's interest tags.
func (s *Server) handleSaveInterests(w http.ResponseWriter, r *http.Request) {
	var req types.SaveInterestsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, msgSaveResponse)
		return
	}
	for i, tag := range req.Interests {
		req.Interests[i] = strings.TrimSpace(tag)
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, validationError("interests", err), msgSaveResponse)
		return
	}

	userID := middleware.GetUserID(r)
	tags := dedupe(req.Interests)
	if err := s.store.SaveOnboardingResponse(r.Context(), userID, onboarding.KeyInterests, tags); err != nil {
		s.writeError(w, r, err, msgSaveResponse)
		return
	}

	s.logger.Debug("saved interests", zap.String("user_id", userID.String()), zap.Strings("interests", tags))
	s.jsonResponse(w, http.StatusOK, successBody)
}

// handleSaveSituation stores the caller's current situation.
func (s *Server) handleSaveSituation(w http.ResponseWriter, r *http.Request) {
	var req types.SaveSituationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, msgSaveResponse)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, validationError("currentSituation", err), msgSaveResponse)
		return
	}

	userID := middleware.GetUserID(r)
	value := onboarding.SituationValue(req.CurrentSituation)
	if err := s.store.SaveOnboardingResponse(r.Context(), userID, onboarding.KeyCurrentSituation, value); err != nil {
		s.writeError(w, r, err, msgSaveResponse)
		return
	}

	s.jsonResponse(w, http.StatusOK, successBody)
}

// handleSelectApps replaces the caller's app list with the selected apps, in
// the order given. Every app must be in the active catalog.
func (s *Server) handleSelectApps(w http.ResponseWriter, r *http.Request) {
	var req types.SelectAppsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, msgSelectApps)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, validationError("selectedAppIds", err), msgSelectApps)
		return
	}

	appIDs := dedupe(req.SelectedAppIDs)
	if len(appIDs) > 0 {
		apps, err := s.store.ListActiveApps(r.Context())
		if err != nil {
			s.writeError(w, r, err, msgSelectApps)
			return
		}
		active := make(map[string]bool, len(apps))
		for _, app := range apps {
			active[app.ID] = true
		}
		var unknown []string
		for _, id := range appIDs {
			if !active[id] {
				unknown = append(unknown, id)
			}
		}
		if len(unknown) > 0 {
			s.writeError(w, r, &ErrUnknownApps{AppIDs: unknown}, msgSelectApps)
			return
		}
	}

	userID := middleware.GetUserID(r)
	if err := s.store.SelectApps(r.Context(), userID, appIDs); err != nil {
		s.writeError(w, r, err, msgSelectApps)
		return
	}

	s.logger.Info("saved app selection", zap.String("user_id", userID.String()), zap.Int("count", len(appIDs)))
	s.jsonResponse(w, http.StatusOK, successBody)
}

// dedupe drops repeated values, keeping the first occurrence.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
