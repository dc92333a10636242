package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"github.com/dmitrijs2005/foliovault/internal/server/projects"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 10
	}

	opts := projects.ListOptions{
		Page:     page,
		Limit:    limit,
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}
	if v := q.Get("featured"); v != "" {
		featured := v == "true"
		opts.Featured = &featured
	}

	result, err := s.projects.List(r.Context(), opts)
	if err != nil {
		s.log.Error(r.Context(), "project listing failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	respondPage(w, result.Projects, page, limit, result.Total)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		s.log.Error(r.Context(), "project lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch project")
		return
	}
	respondData(w, http.StatusOK, p)
}

func (s *Server) handleGetProjectBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := s.projects.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		s.log.Error(r.Context(), "project lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch project")
		return
	}
	respondData(w, http.StatusOK, p)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var in projects.NewProject
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Title == "" || in.Description == "" || in.Category == "" {
		respondError(w, http.StatusBadRequest, "Invalid project data")
		return
	}

	p, err := s.projects.Create(r.Context(), in)
	if err != nil {
		s.log.Error(r.Context(), "project creation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create project")
		return
	}
	respondMessage(w, http.StatusOK, p, "Project created successfully")
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var upd projects.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := s.projects.Update(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		s.log.Error(r.Context(), "project update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update project")
		return
	}
	respondMessage(w, http.StatusOK, p, "Project updated successfully")
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	ok, err := s.projects.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.log.Error(r.Context(), "project deletion failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "Project deleted successfully"})
}
