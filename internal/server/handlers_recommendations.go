package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/app-recommender/internal/recommend"
	"github.com/jonathan/app-recommender/internal/server/middleware"
	"github.com/jonathan/app-recommender/internal/types"
)

// handleGetRecommendations returns every eligible app ranked for the caller.
func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := s.engine.Recommend(r.Context(), middleware.GetUserID(r))
	if err != nil {
		s.writeError(w, r, err, msgLoadRecommendations)
		return
	}
	s.jsonResponse(w, http.StatusOK, nonNil(recs))
}

// handleGenerateRecommendations ranks the caller's apps, stores the top of the
// ranking as their recommendation snapshot and returns it.
func (s *Server) handleGenerateRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	recs, err := s.engine.Recommend(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err, msgLoadRecommendations)
		return
	}

	top := recommend.Top(recs, s.snapshotLimit)
	if err := s.store.ReplaceRecommendedApps(r.Context(), userID, top); err != nil {
		s.writeError(w, r, err, msgSaveRecommendations)
		return
	}

	s.logger.Info("stored recommendation snapshot",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(top)),
	)
	s.jsonResponse(w, http.StatusOK, nonNil(top))
}

// nonNil makes an empty ranking encode as [] rather than null.
func nonNil(recs []types.Recommendation) []types.Recommendation {
	if recs == nil {
		return []types.Recommendation{}
	}
	return recs
}
