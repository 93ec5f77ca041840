package responses

import "time"

type Notification struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
	OnClick string                 `json:"onClickPath,omitempty"`
}

// User mirrors the remote user record.
type User struct {
	ID                  string         `json:"_id"`
	Name                string         `json:"name"`
	Email               string         `json:"email"`
	PhoneNumber         string         `json:"phoneNumber"`
	IsAdmin             bool           `json:"isAdmin"`
	IsDoctor            bool           `json:"isDoctor"`
	ProfilePicture      string         `json:"profilePicture,omitempty"`
	SeenNotifications   []Notification `json:"seenNotifications"`
	UnseenNotifications []Notification `json:"unseenNotifications"`
	CreatedAt           time.Time      `json:"createdAt"`
}

// Profile is the user as shown to the browser.
type Profile struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Email               string         `json:"email"`
	PhoneNumber         string         `json:"phone_number"`
	MaskedPhoneNumber   string         `json:"masked_phone_number"`
	Role                string         `json:"role"`
	IsAdmin             bool           `json:"is_admin"`
	IsDoctor            bool           `json:"is_doctor"`
	ProfilePictureURL   string         `json:"profile_picture_url,omitempty"`
	SeenNotifications   []Notification `json:"seen_notifications"`
	UnseenNotifications []Notification `json:"unseen_notifications"`
	CreatedAt           string         `json:"created_at,omitempty"`
}

type UploadProfilePicture struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
}
