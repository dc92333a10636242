package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"github.com/dmitrijs2005/foliovault/internal/server/team"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListTeamMembers(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	members, err := s.team.List(r.Context(), activeOnly)
	if err != nil {
		s.log.Error(r.Context(), "team listing failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch team members")
		return
	}
	respondData(w, http.StatusOK, members)
}

func (s *Server) handleCreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var in team.NewMember
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Name == "" || in.Role == "" {
		respondError(w, http.StatusBadRequest, "Invalid team member data")
		return
	}

	m, err := s.team.Create(r.Context(), in)
	if err != nil {
		s.log.Error(r.Context(), "team member creation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create team member")
		return
	}
	respondMessage(w, http.StatusOK, m, "Team member created successfully")
}

func (s *Server) handleUpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var upd team.MemberUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	m, err := s.team.Update(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "Team member not found")
			return
		}
		s.log.Error(r.Context(), "team member update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update team member")
		return
	}
	respondMessage(w, http.StatusOK, m, "Team member updated successfully")
}

func (s *Server) handleDeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	ok, err := s.team.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.log.Error(r.Context(), "team member deletion failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete team member")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "Team member not found")
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "Team member deleted successfully"})
}
