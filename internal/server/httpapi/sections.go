package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"github.com/dmitrijs2005/foliovault/internal/server/sections"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGetSections(w http.ResponseWriter, r *http.Request) {
	all, err := s.sections.GetAll(r.Context())
	if err != nil {
		s.log.Error(r.Context(), "section listing failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch sections")
		return
	}
	respondData(w, http.StatusOK, all)
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	var content map[string]any
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sec, err := s.sections.Update(r.Context(), sections.Type(chi.URLParam(r, "type")), content)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			respondError(w, http.StatusBadRequest, "Invalid section data")
			return
		}
		s.log.Error(r.Context(), "section update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update section")
		return
	}
	respondMessage(w, http.StatusOK, sec, "Section updated successfully")
}
