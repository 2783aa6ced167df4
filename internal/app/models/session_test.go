package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionStateMachine(t *testing.T) {
	session := &Session{SessionID: "abc"}
	assert.False(t, session.LoggedIn, "initial state must be logged out")
	assert.Equal(t, "auth", session.View())

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	session.Login("alice", now, time.Hour)

	assert.True(t, session.LoggedIn)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, "consultation", session.View())
	assert.Equal(t, now.Add(time.Hour), session.ExpiresAt)

	session.Logout()

	state := session.ToState()
	assert.False(t, state.LoggedIn)
	assert.Empty(t, state.Username)
	assert.Equal(t, "auth", state.View)
}

func TestSessionIsExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	session := &Session{}
	assert.False(t, session.IsExpired(now), "zero expiry never expires")

	session.Login("bob", now, time.Minute)
	assert.False(t, session.IsExpired(now.Add(30*time.Second)))
	assert.True(t, session.IsExpired(now.Add(2*time.Minute)))
}

func TestNilSessionToState(t *testing.T) {
	var session *Session
	state := session.ToState()

	assert.False(t, state.LoggedIn)
	assert.Equal(t, "auth", state.View)
}
