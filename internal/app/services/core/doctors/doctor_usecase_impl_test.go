package doctors

import (
	"context"
	"errors"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDoctorBackendClient struct {
	mock.Mock
}

func (m *MockDoctorBackendClient) GetDoctor(ctx context.Context, token, doctorID string) (*responses.Doctor, error) {
	args := m.Called(ctx, token, doctorID)
	doctor, _ := args.Get(0).(*responses.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorBackendClient) GetApprovedDoctors(ctx context.Context, token string) ([]responses.Doctor, error) {
	args := m.Called(ctx, token)
	doctors, _ := args.Get(0).([]responses.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorBackendClient) GetDoctors(ctx context.Context, token string) ([]responses.Doctor, error) {
	args := m.Called(ctx, token)
	doctors, _ := args.Get(0).([]responses.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorBackendClient) ApplyDoctor(ctx context.Context, token string, request *requests.ApplyDoctor) (*responses.Doctor, error) {
	args := m.Called(ctx, token, request)
	doctor, _ := args.Get(0).(*responses.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorBackendClient) UpdateDoctor(ctx context.Context, token string, request *requests.ApplyDoctor) (*responses.Doctor, error) {
	args := m.Called(ctx, token, request)
	doctor, _ := args.Get(0).(*responses.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorBackendClient) UpdateDoctorStatus(ctx context.Context, token string, request *requests.UpdateDoctorStatus) (*responses.Doctor, error) {
	args := m.Called(ctx, token, request)
	doctor, _ := args.Get(0).(*responses.Doctor)
	return doctor, args.Error(1)
}

func TestNewDoctorCard(t *testing.T) {
	card := NewDoctorCard(&responses.Doctor{
		ID:                 "d1",
		Prefix:             "Dr.",
		FullName:           "Ali Khan",
		PhoneNumber:        "03001234567",
		Experience:         7,
		FeePerConsultation: 1500,
		FromTime:           "09:00",
		ToTime:             "2024-01-01T17:30:00Z",
	})

	assert.Equal(t, "Dr. Ali Khan", card.DisplayName)
	assert.Equal(t, "*******4567", card.MaskedPhoneNumber)
	assert.Equal(t, "7 Years", card.Experience)
	assert.Equal(t, "1,500", card.Fee)
	assert.Equal(t, "9:00 AM - 5:30 PM", card.Timings)
	assert.Equal(t, "17:30", card.ToTime)
	assert.Equal(t, 30, card.ConsultationMinutes)
	assert.Equal(t, "30 Minutes", card.ConsultationLabel)
}

func TestNewDoctorCardMissingTimings(t *testing.T) {
	card := NewDoctorCard(&responses.Doctor{FullName: "Ali", Experience: 1, FromTime: "soon"})

	assert.Equal(t, "Ali", card.DisplayName)
	assert.Equal(t, "1 Year", card.Experience)
	assert.Empty(t, card.Timings)
}

func TestDoctorDecodesStringNumbers(t *testing.T) {
	doctor := new(responses.Doctor)
	err := json.Unmarshal([]byte(`{"experience":"5","feePerConsultation":"2500.5"}`), doctor)
	require.NoError(t, err)
	assert.Equal(t, responses.Amount(5), doctor.Experience)
	assert.Equal(t, responses.Amount(2500.5), doctor.FeePerConsultation)

	err = json.Unmarshal([]byte(`{"experience":3,"feePerConsultation":null}`), doctor)
	require.NoError(t, err)
	assert.Equal(t, responses.Amount(3), doctor.Experience)
}

func TestAdminOnlyOperations(t *testing.T) {
	backend := new(MockDoctorBackendClient)
	uc := &doctorUsecase{DoctorBackendClient: backend, Log: zap.NewNop()}
	user := &models.Session{UserID: "u1", BackendToken: "t"}

	_, err := uc.GetDoctors(context.Background(), user)
	assert.Equal(t, constvars.StatusForbidden, statusOf(err))

	_, err = uc.UpdateDoctorStatus(context.Background(), user, &requests.UpdateDoctorStatus{DoctorID: "d1", Status: "approved"})
	assert.Equal(t, constvars.StatusForbidden, statusOf(err))
	backend.AssertNotCalled(t, "UpdateDoctorStatus", mock.Anything, mock.Anything, mock.Anything)

	admin := &models.Session{UserID: "a1", IsAdmin: true, BackendToken: "t"}
	backend.On("UpdateDoctorStatus", mock.Anything, "t", mock.Anything).Return(&responses.Doctor{ID: "d1", Status: "approved"}, nil)
	card, err := uc.UpdateDoctorStatus(context.Background(), admin, &requests.UpdateDoctorStatus{DoctorID: "d1", Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", card.Status)
}

func TestApplyDoctorNormalizesTimings(t *testing.T) {
	backend := new(MockDoctorBackendClient)
	uc := &doctorUsecase{DoctorBackendClient: backend, Log: zap.NewNop()}
	session := &models.Session{UserID: "u1", BackendToken: "t"}

	backend.On("ApplyDoctor", mock.Anything, "t", mock.MatchedBy(func(r *requests.ApplyDoctor) bool {
		return r.UserID == "u1" && r.FromTime == "09:00" && r.ToTime == "17:00"
	})).Return(&responses.Doctor{ID: "d1", FromTime: "09:00", ToTime: "17:00", Status: "pending"}, nil)

	card, err := uc.ApplyDoctor(context.Background(), session, &requests.ApplyDoctor{FromTime: "9:00 AM", ToTime: "17:00:00"})

	require.NoError(t, err)
	assert.Equal(t, "pending", card.Status)
	backend.AssertExpectations(t)

	_, err = uc.ApplyDoctor(context.Background(), session, &requests.ApplyDoctor{FromTime: "nine", ToTime: "17:00"})
	assert.Equal(t, constvars.StatusBadRequest, statusOf(err))
}

func statusOf(err error) int {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return 0
}
