package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

// Clients for the remote booking API. token is the bearer token the API issued at login.

type AuthBackendClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.BackendLogin, error)
	Signup(ctx context.Context, request *requests.Signup) (message string, err error)
	Verify(ctx context.Context, token, userID string) (*responses.User, error)
}

type UserBackendClient interface {
	GetUser(ctx context.Context, token, userID string) (*responses.User, error)
	GetUsers(ctx context.Context, token string) ([]responses.User, error)
	UpdateUser(ctx context.Context, token string, request *requests.UpdateProfile) (*responses.User, error)
	UpdateProfilePicture(ctx context.Context, token, userID, objectName string) (*responses.User, error)
	DeleteUser(ctx context.Context, token, userID string) error
}

type DoctorBackendClient interface {
	GetDoctor(ctx context.Context, token, doctorID string) (*responses.Doctor, error)
	GetApprovedDoctors(ctx context.Context, token string) ([]responses.Doctor, error)
	GetDoctors(ctx context.Context, token string) ([]responses.Doctor, error)
	ApplyDoctor(ctx context.Context, token string, request *requests.ApplyDoctor) (*responses.Doctor, error)
	UpdateDoctor(ctx context.Context, token string, request *requests.ApplyDoctor) (*responses.Doctor, error)
	UpdateDoctorStatus(ctx context.Context, token string, request *requests.UpdateDoctorStatus) (*responses.Doctor, error)
}

type AppointmentBackendClient interface {
	GetBookedSlots(ctx context.Context, token, doctorID string) ([]responses.BookedSlot, error)
	CheckAvailability(ctx context.Context, token string, request *requests.BackendCheckAvailability) (message string, err error)
	BookAppointment(ctx context.Context, token, idempotencyKey string, request *requests.BackendBookAppointment) (*responses.Appointment, string, error)
	GetUserAppointments(ctx context.Context, token, userID string) ([]responses.Appointment, error)
	GetDoctorAppointments(ctx context.Context, token, userID string) ([]responses.Appointment, error)
}

type NotificationBackendClient interface {
	MarkAllSeen(ctx context.Context, token, userID string) (*responses.User, error)
	DeleteAllSeen(ctx context.Context, token, userID string) (*responses.User, error)
}
