package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/foliovault/internal/common"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLogin authenticates by username or email and sets the session
// cookie. Failed attempts return the service's uniform message with 401.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	result := s.users.Login(r.Context(), req.Username, req.Password)
	if !result.Success {
		respondError(w, http.StatusUnauthorized, result.Message)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.AccessTokenCookieName,
		Value:    result.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, result)
}

// handleLogout clears the session cookie. Stateless tokens stay valid
// until expiry; logout only removes them from the browser.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.AccessTokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "Logged out"})
}

// handleMe returns the claims of the presented token.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	token := extractToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	result := s.users.VerifyToken(token)
	if !result.Success {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
