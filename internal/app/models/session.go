package models

import (
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"time"
)

// Session is the gateway-side view of a logged in user. It is replaced field by field from the
// booking API, never patched with partial values.
type Session struct {
	SessionID           string                   `json:"session_id"`
	UserID              string                   `json:"user_id"`
	Name                string                   `json:"name"`
	Email               string                   `json:"email"`
	PhoneNumber         string                   `json:"phone_number"`
	IsAdmin             bool                     `json:"is_admin"`
	IsDoctor            bool                     `json:"is_doctor"`
	ProfilePicture      string                   `json:"profile_picture,omitempty"`
	BackendToken        string                   `json:"backend_token"`
	SeenNotifications   []responses.Notification `json:"seen_notifications"`
	UnseenNotifications []responses.Notification `json:"unseen_notifications"`
	ExpiresAt           time.Time                `json:"expires_at"`
}

// MergeUser overwrites every user-owned field with the values of user.
func (s *Session) MergeUser(user *responses.User) {
	if user == nil {
		return
	}
	s.UserID = user.ID
	s.Name = user.Name
	s.Email = user.Email
	s.PhoneNumber = user.PhoneNumber
	s.IsAdmin = user.IsAdmin
	s.IsDoctor = user.IsDoctor
	s.ProfilePicture = user.ProfilePicture
	s.MergeNotifications(user.SeenNotifications, user.UnseenNotifications)
}

// MergeNotifications replaces both notification lists. Nil lists become empty lists.
func (s *Session) MergeNotifications(seen, unseen []responses.Notification) {
	s.SeenNotifications = append([]responses.Notification{}, seen...)
	s.UnseenNotifications = append([]responses.Notification{}, unseen...)
}

func (s *Session) Role() string {
	switch {
	case s.IsAdmin:
		return constvars.RoleAdmin
	case s.IsDoctor:
		return constvars.RoleDoctor
	default:
		return constvars.RoleUser
	}
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// AppointmentsRedirect is where the browser goes after a successful booking.
func (s *Session) AppointmentsRedirect() string {
	if s.IsDoctor {
		return constvars.RedirectDoctorAppointments
	}
	return constvars.RedirectUserAppointments
}

// Snapshot is the user record sent along with a booking.
func (s *Session) Snapshot() *responses.User {
	return &responses.User{
		ID:                  s.UserID,
		Name:                s.Name,
		Email:               s.Email,
		PhoneNumber:         s.PhoneNumber,
		IsAdmin:             s.IsAdmin,
		IsDoctor:            s.IsDoctor,
		ProfilePicture:      s.ProfilePicture,
		SeenNotifications:   s.SeenNotifications,
		UnseenNotifications: s.UnseenNotifications,
	}
}
