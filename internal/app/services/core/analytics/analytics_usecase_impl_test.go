package analytics

import (
	"context"
	"errors"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUsers struct {
	users []responses.User
	calls int
}

func (s *stubUsers) GetUser(ctx context.Context, token, userID string) (*responses.User, error) {
	return nil, nil
}

func (s *stubUsers) GetUsers(ctx context.Context, token string) ([]responses.User, error) {
	s.calls++
	return s.users, nil
}

func (s *stubUsers) UpdateUser(ctx context.Context, token string, request *requests.UpdateProfile) (*responses.User, error) {
	return nil, nil
}

func (s *stubUsers) UpdateProfilePicture(ctx context.Context, token, userID, objectName string) (*responses.User, error) {
	return nil, nil
}

func (s *stubUsers) DeleteUser(ctx context.Context, token, userID string) error {
	return nil
}

type stubDoctors struct {
	doctors []responses.Doctor
	err     error
}

func (s *stubDoctors) GetDoctor(ctx context.Context, token, doctorID string) (*responses.Doctor, error) {
	return nil, nil
}

func (s *stubDoctors) GetApprovedDoctors(ctx context.Context, token string) ([]responses.Doctor, error) {
	return s.doctors, s.err
}

func (s *stubDoctors) GetDoctors(ctx context.Context, token string) ([]responses.Doctor, error) {
	return s.doctors, s.err
}

func (s *stubDoctors) ApplyDoctor(ctx context.Context, token string, request *requests.ApplyDoctor) (*responses.Doctor, error) {
	return nil, nil
}

func (s *stubDoctors) UpdateDoctor(ctx context.Context, token string, request *requests.ApplyDoctor) (*responses.Doctor, error) {
	return nil, nil
}

func (s *stubDoctors) UpdateDoctorStatus(ctx context.Context, token string, request *requests.UpdateDoctorStatus) (*responses.Doctor, error) {
	return nil, nil
}

type stubAttempts struct {
	counts map[string]int
}

func (s *stubAttempts) Insert(ctx context.Context, attempt *models.BookingAttempt) error {
	return nil
}

func (s *stubAttempts) CountByOutcome(ctx context.Context) (map[string]int, error) {
	return s.counts, nil
}

type mapRedis struct {
	data map[string]string
}

func (r *mapRedis) Delete(ctx context.Context, key string) error {
	delete(r.data, key)
	return nil
}

func (r *mapRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	r.data[key] = string(raw)
	return err
}

func (r *mapRedis) Get(ctx context.Context, key string) (string, error) {
	return r.data[key], nil
}

func (r *mapRedis) GetInto(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := r.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal([]byte(raw), dest)
}

func (r *mapRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, r.Set(ctx, key, value, exp)
}

func TestBuildDashboard(t *testing.T) {
	dashboard := BuildDashboard(
		[]responses.User{{IsAdmin: true}, {IsAdmin: true, IsDoctor: true}, {IsDoctor: true}, {}, {}},
		[]responses.Doctor{{Specialization: "Cardiology"}, {Specialization: "Dermatology"}, {Specialization: "Cardiology"}, {}},
		map[string]int{"booked": 3, "unavailable": 1},
	)

	assert.Equal(t, 5, dashboard.TotalUsers)
	assert.Equal(t, 4, dashboard.TotalDoctors)
	assert.Equal(t, []responses.NamedCount{{Name: "Admins", Value: 2}, {Name: "Doctors", Value: 1}, {Name: "Users", Value: 2}}, dashboard.UsersByRole)
	assert.Equal(t, responses.NamedCount{Name: "Cardiology", Value: 2}, dashboard.DoctorsBySpecialization[0])
	assert.Contains(t, dashboard.DoctorsBySpecialization, responses.NamedCount{Name: "Unknown", Value: 1})
	assert.Contains(t, dashboard.BookingAttemptsByOutcome, responses.NamedCount{Name: "booked", Value: 3})
	assert.Contains(t, dashboard.BookingAttemptsByOutcome, responses.NamedCount{Name: "failed", Value: 0})
}

func TestGetDashboardCachesResult(t *testing.T) {
	users := &stubUsers{users: []responses.User{{}, {IsDoctor: true}}}
	uc := &analyticsUsecase{
		UserBackendClient:        users,
		DoctorBackendClient:      &stubDoctors{doctors: []responses.Doctor{{Specialization: "ENT"}}},
		BookingAttemptRepository: &stubAttempts{counts: map[string]int{"booked": 1}},
		RedisRepository:          &mapRedis{data: map[string]string{}},
		InternalConfig:           &config.InternalConfig{},
		Log:                      zap.NewNop(),
	}
	admin := &models.Session{IsAdmin: true, BackendToken: "t"}

	first, err := uc.GetDashboard(context.Background(), admin)
	require.NoError(t, err)
	second, err := uc.GetDashboard(context.Background(), admin)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, users.calls)
}

func TestGetDashboardRequiresAdmin(t *testing.T) {
	uc := &analyticsUsecase{Log: zap.NewNop()}

	_, err := uc.GetDashboard(context.Background(), &models.Session{IsDoctor: true})
	assert.Error(t, err)
}

func TestGetDashboardPropagatesBackendError(t *testing.T) {
	uc := &analyticsUsecase{
		UserBackendClient:        &stubUsers{},
		DoctorBackendClient:      &stubDoctors{err: errors.New("unreachable")},
		BookingAttemptRepository: &stubAttempts{},
		RedisRepository:          &mapRedis{data: map[string]string{}},
		InternalConfig:           &config.InternalConfig{},
		Log:                      zap.NewNop(),
	}

	_, err := uc.GetDashboard(context.Background(), &models.Session{IsAdmin: true})
	assert.Error(t, err)
}
