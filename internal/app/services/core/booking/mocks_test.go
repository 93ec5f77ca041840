package booking

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
)

type memoryRedis struct {
	mu        sync.Mutex
	data      map[string]string
	onGetInto func(key string)
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string]string{}}
}

func (r *memoryRedis) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = string(raw)
	return nil
}

func (r *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[key], nil
}

func (r *memoryRedis) GetInto(ctx context.Context, key string, dest interface{}) (bool, error) {
	if r.onGetInto != nil {
		r.onGetInto(key)
	}
	raw, _ := r.Get(ctx, key)
	if raw == "" {
		return false, nil
	}
	return true, json.Unmarshal([]byte(raw), dest)
}

func (r *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	r.mu.Lock()
	_, exists := r.data[key]
	r.mu.Unlock()
	if exists {
		return false, nil
	}
	return true, r.Set(ctx, key, value, exp)
}

type MockAppointmentBackendClient struct {
	mock.Mock
}

func (m *MockAppointmentBackendClient) GetBookedSlots(ctx context.Context, token, doctorID string) ([]responses.BookedSlot, error) {
	args := m.Called(ctx, token, doctorID)
	slots, _ := args.Get(0).([]responses.BookedSlot)
	return slots, args.Error(1)
}

func (m *MockAppointmentBackendClient) CheckAvailability(ctx context.Context, token string, request *requests.BackendCheckAvailability) (string, error) {
	args := m.Called(ctx, token, request)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentBackendClient) BookAppointment(ctx context.Context, token, idempotencyKey string, request *requests.BackendBookAppointment) (*responses.Appointment, string, error) {
	args := m.Called(ctx, token, idempotencyKey, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.String(1), args.Error(2)
}

func (m *MockAppointmentBackendClient) GetUserAppointments(ctx context.Context, token, userID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, token, userID)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentBackendClient) GetDoctorAppointments(ctx context.Context, token, userID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, token, userID)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

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

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishAppointmentBooked(ctx context.Context, event *requests.AppointmentBookedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type recordingAttempts struct {
	mu       sync.Mutex
	attempts []models.BookingAttempt
}

func (r *recordingAttempts) Insert(ctx context.Context, attempt *models.BookingAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, *attempt)
	return nil
}

func (r *recordingAttempts) CountByOutcome(ctx context.Context) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int{}
	for _, attempt := range r.attempts {
		counts[attempt.Outcome]++
	}
	return counts, nil
}

func (r *recordingAttempts) outcomes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	outcomes := make([]string, 0, len(r.attempts))
	for _, attempt := range r.attempts {
		outcomes = append(outcomes, attempt.Outcome)
	}
	return outcomes
}

type fakeLocker struct {
	mu     sync.Mutex
	held   map[string]string
	unlock int
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: map[string]string{}}
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return false, "", nil
	}
	l.held[key] = "lock-" + key
	return true, l.held[key], nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == lockValue {
		delete(l.held, key)
		l.unlock++
	}
	return nil
}
