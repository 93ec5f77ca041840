package appointments

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAppointments struct {
	userCalls   int
	doctorCalls int
}

func (s *stubAppointments) GetBookedSlots(ctx context.Context, token, doctorID string) ([]responses.BookedSlot, error) {
	return nil, nil
}

func (s *stubAppointments) CheckAvailability(ctx context.Context, token string, request *requests.BackendCheckAvailability) (string, error) {
	return "", nil
}

func (s *stubAppointments) BookAppointment(ctx context.Context, token, idempotencyKey string, request *requests.BackendBookAppointment) (*responses.Appointment, string, error) {
	return nil, "", nil
}

func (s *stubAppointments) GetUserAppointments(ctx context.Context, token, userID string) ([]responses.Appointment, error) {
	s.userCalls++
	return []responses.Appointment{{ID: "a1", UserID: userID}}, nil
}

func (s *stubAppointments) GetDoctorAppointments(ctx context.Context, token, userID string) ([]responses.Appointment, error) {
	s.doctorCalls++
	return nil, nil
}

func TestGetAppointmentsViews(t *testing.T) {
	backend := new(stubAppointments)
	uc := &appointmentUsecase{AppointmentBackendClient: backend, Log: zap.NewNop()}
	doctor := &models.Session{UserID: "u9", IsDoctor: true}

	appointments, err := uc.GetAppointments(context.Background(), doctor, &requests.GetAppointments{})
	require.NoError(t, err)
	assert.Equal(t, "u9", appointments[0].UserID)

	appointments, err = uc.GetAppointments(context.Background(), doctor, &requests.GetAppointments{View: "doctor"})
	require.NoError(t, err)
	assert.NotNil(t, appointments)
	assert.Empty(t, appointments)
	assert.Equal(t, 1, backend.userCalls)
	assert.Equal(t, 1, backend.doctorCalls)
}

func TestGetAppointmentsDoctorViewRequiresDoctor(t *testing.T) {
	backend := new(stubAppointments)
	uc := &appointmentUsecase{AppointmentBackendClient: backend, Log: zap.NewNop()}

	_, err := uc.GetAppointments(context.Background(), &models.Session{UserID: "u1"}, &requests.GetAppointments{View: "doctor"})

	assert.Error(t, err)
	assert.Zero(t, backend.doctorCalls)
}
