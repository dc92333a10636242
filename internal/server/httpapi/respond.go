package httpapi

import (
	"encoding/json"
	"net/http"
)

// apiResponse is the envelope for single-object endpoints.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// pagination describes the slice returned by a paginated listing.
type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// paginatedResponse is the envelope for paginated listings.
type paginatedResponse struct {
	Data       any        `json:"data"`
	Pagination pagination `json:"pagination"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, apiResponse{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, apiResponse{Success: true, Data: data, Message: message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{Success: false, Error: message})
}

func respondPage(w http.ResponseWriter, data any, page, limit, total int) {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	writeJSON(w, http.StatusOK, paginatedResponse{
		Data: data,
		Pagination: pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	})
}
