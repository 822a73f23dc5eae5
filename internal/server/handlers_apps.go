package server

import (
	"net/http"

	"github.com/jonathan/app-recommender/internal/types"
)

// handleListApps returns the active catalog for the app picker.
func (s *Server) handleListApps(w http.ResponseWriter, r *http.Request) {
	apps, err := s.store.ListActiveApps(r.Context())
	if err != nil {
		s.writeError(w, r, err, msgLoadApps)
		return
	}

	summaries := make([]types.AppSummary, 0, len(apps))
	for i := range apps {
		summaries = append(summaries, apps[i].Summary())
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}
