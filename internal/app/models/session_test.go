package models

import (
	"medibook-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionMergeUserReplacesEveryField(t *testing.T) {
	session := &Session{
		SessionID:         "s1",
		UserID:            "u1",
		Name:              "Old Name",
		IsAdmin:           true,
		BackendToken:      "token",
		SeenNotifications: []responses.Notification{{Message: "old"}},
	}

	session.MergeUser(&responses.User{
		ID:                  "u1",
		Name:                "New Name",
		Email:               "new@example.com",
		IsDoctor:            true,
		UnseenNotifications: []responses.Notification{{Message: "fresh"}},
	})

	assert.Equal(t, "New Name", session.Name)
	assert.Equal(t, "new@example.com", session.Email)
	assert.False(t, session.IsAdmin, "admin flag should follow the remote user")
	assert.True(t, session.IsDoctor)
	assert.Empty(t, session.SeenNotifications, "stale notifications should not survive a merge")
	assert.Len(t, session.UnseenNotifications, 1)
	assert.Equal(t, "s1", session.SessionID, "session identity is kept")
	assert.Equal(t, "token", session.BackendToken, "backend token is kept")
}

func TestSessionMergeNotificationsNeverNil(t *testing.T) {
	session := &Session{}
	session.MergeNotifications(nil, nil)

	assert.NotNil(t, session.SeenNotifications)
	assert.NotNil(t, session.UnseenNotifications)
}

func TestSessionRoleAndRedirect(t *testing.T) {
	assert.Equal(t, "admin", (&Session{IsAdmin: true, IsDoctor: true}).Role())
	assert.Equal(t, "doctor", (&Session{IsDoctor: true}).Role())
	assert.Equal(t, "user", (&Session{}).Role())

	assert.Equal(t, "/doctors/appointments", (&Session{IsDoctor: true}).AppointmentsRedirect())
	assert.Equal(t, "/appointments", (&Session{}).AppointmentsRedirect())
}

func TestSessionIsExpired(t *testing.T) {
	now := time.Now()
	assert.True(t, (&Session{ExpiresAt: now.Add(-time.Minute)}).IsExpired(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(time.Minute)}).IsExpired(now))
	assert.False(t, (&Session{}).IsExpired(now))
}
