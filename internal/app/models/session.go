package models

import (
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/dto/responses"
	"time"
)

// Session is the per-client UI state. The zero value is the logged-out state.
type Session struct {
	SessionID string    `json:"session_id"`
	LoggedIn  bool      `json:"logged_in"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login moves LoggedOut -> LoggedIn.
func (s *Session) Login(username string, now time.Time, ttl time.Duration) {
	s.LoggedIn = true
	s.Username = username
	s.CreatedAt = now
	s.ExpiresAt = now.Add(ttl)
}

// Logout moves LoggedIn -> LoggedOut and clears the username.
func (s *Session) Logout() {
	s.LoggedIn = false
	s.Username = ""
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// View is the page section the client should show for this state.
func (s *Session) View() string {
	if s != nil && s.LoggedIn {
		return constvars.ViewConsultation
	}
	return constvars.ViewAuth
}

func (s *Session) ToState() responses.SessionState {
	if s == nil {
		return responses.SessionState{View: constvars.ViewAuth}
	}
	return responses.SessionState{
		LoggedIn: s.LoggedIn,
		Username: s.Username,
		View:     s.View(),
	}
}
