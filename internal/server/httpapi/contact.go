package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/dmitrijs2005/foliovault/internal/server/mail"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// handleContact validates the submission and hands it to the mailer
// addressed to the configured owner.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		respondError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	msg := mail.Message{
		To:      s.cfg.AdminEmail,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Portfolio Contact: %s", req.Subject),
		Body: fmt.Sprintf("New contact form submission\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n",
			req.Name, req.Email, req.Subject, req.Message),
	}

	if err := s.mailer.Send(r.Context(), msg); err != nil {
		s.log.Error(r.Context(), "contact mail delivery failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to send email. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Message sent successfully. I'll get back to you soon!",
	})
}
