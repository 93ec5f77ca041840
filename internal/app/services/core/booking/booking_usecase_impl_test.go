package booking

import (
	"context"
	"errors"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingFixture struct {
	usecase      *bookingUsecase
	appointments *MockAppointmentBackendClient
	doctors      *MockDoctorBackendClient
	publisher    *MockEventPublisher
	attempts     *recordingAttempts
	locker       *fakeLocker
	redis        *memoryRedis
	session      *models.Session
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		appointments: new(MockAppointmentBackendClient),
		doctors:      new(MockDoctorBackendClient),
		publisher:    new(MockEventPublisher),
		attempts:     new(recordingAttempts),
		locker:       newFakeLocker(),
		redis:        newMemoryRedis(),
		session: &models.Session{
			SessionID:    "s1",
			UserID:       "u1",
			Name:         "Sara",
			BackendToken: "remote-token",
		},
	}
	f.usecase = newBookingUsecase(f.appointments, f.doctors, f.redis, f.locker, f.publisher, f.attempts, &config.InternalConfig{}, zap.NewNop())
	return f
}

var doctorD1 = &responses.Doctor{ID: "d1", FullName: "Ali Khan", FromTime: "09:00", ToTime: "17:00"}

func ctxWithRequestID() context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
}

func (f *bookingFixture) expectLookups(booked []responses.BookedSlot) {
	f.doctors.On("GetDoctor", mock.Anything, "remote-token", "d1").Return(doctorD1, nil)
	f.appointments.On("GetBookedSlots", mock.Anything, "remote-token", "d1").Return(booked, nil)
}

func (f *bookingFixture) flowState(t *testing.T) FlowState {
	t.Helper()
	record := new(models.BookingFlowRecord)
	found, err := f.redis.GetInto(context.Background(), flowKey("s1", "d1"), record)
	require.NoError(t, err)
	require.True(t, found)
	return FlowState(record.State)
}

func TestCheckAvailabilityFreeSlot(t *testing.T) {
	f := newBookingFixture()
	f.expectLookups([]responses.BookedSlot{{Date: "2025-03-05", Time: "10:00"}})
	f.appointments.On("CheckAvailability", mock.Anything, "remote-token", mock.MatchedBy(func(r *requests.BackendCheckAvailability) bool {
		return r.DoctorID == "d1" && r.Date == "2025-03-05" && r.Time == "10:30"
	})).Return("Appointment available", nil)

	result, err := f.usecase.CheckAvailability(ctxWithRequestID(), f.session, &requests.CheckAvailability{DoctorID: "d1", Date: "2025-03-05", Time: "10:30"})

	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Equal(t, "11:00", result.EndTime)
	assert.Equal(t, "10:30 AM - 11:00 AM", result.Range)
	assert.Equal(t, string(FlowAvailable), result.FlowState)
	assert.Equal(t, FlowAvailable, f.flowState(t))
	assert.Equal(t, []string{constvars.BookingOutcomeAvailable}, f.attempts.outcomes())
	f.appointments.AssertExpectations(t)
}

func TestCheckAvailabilityLocalConflictSkipsRemoteCheck(t *testing.T) {
	f := newBookingFixture()
	f.expectLookups([]responses.BookedSlot{{Date: "2025-03-05", Time: "10:00"}})

	_, err := f.usecase.CheckAvailability(ctxWithRequestID(), f.session, &requests.CheckAvailability{DoctorID: "d1", Date: "2025-03-05", Time: "10:15"})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrorKindAvailabilityConflict, customErr.Kind)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	assert.Equal(t, FlowUnavailable, f.flowState(t))
	assert.Equal(t, []string{constvars.BookingOutcomeUnavailable}, f.attempts.outcomes())
	f.appointments.AssertNotCalled(t, "CheckAvailability", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckAvailabilityRemoteRefusal(t *testing.T) {
	f := newBookingFixture()
	f.expectLookups(nil)
	refusal := exceptions.BuildNewCustomError(nil, constvars.StatusConflict, "Appointment not available", "rejected")
	f.appointments.On("CheckAvailability", mock.Anything, "remote-token", mock.Anything).Return("", refusal)

	_, err := f.usecase.CheckAvailability(ctxWithRequestID(), f.session, &requests.CheckAvailability{DoctorID: "d1", Date: "2025-03-05", Time: "10:30"})

	assert.Equal(t, refusal, err)
	assert.Equal(t, FlowUnavailable, f.flowState(t))
}

func TestCheckAvailabilityOutsideTimingsDefersToRemote(t *testing.T) {
	f := newBookingFixture()
	f.expectLookups(nil)
	f.appointments.On("CheckAvailability", mock.Anything, "remote-token", mock.Anything).Return("ok", nil)

	result, err := f.usecase.CheckAvailability(ctxWithRequestID(), f.session, &requests.CheckAvailability{DoctorID: "d1", Date: "2025-03-05", Time: "20:00"})

	require.NoError(t, err)
	assert.True(t, result.Available)
	f.appointments.AssertCalled(t, "CheckAvailability", mock.Anything, "remote-token", mock.Anything)
}

func TestCheckAvailabilityNetworkErrorLeavesFlowUntouched(t *testing.T) {
	f := newBookingFixture()
	unreachable := exceptions.ErrBackendUnreachable(errors.New("connection refused"), "doctor")
	f.doctors.On("GetDoctor", mock.Anything, "remote-token", "d1").Return(nil, unreachable)
	f.appointments.On("GetBookedSlots", mock.Anything, "remote-token", "d1").Return(nil, nil)

	_, err := f.usecase.CheckAvailability(ctxWithRequestID(), f.session, &requests.CheckAvailability{DoctorID: "d1", Date: "2025-03-05", Time: "10:30"})

	assert.Equal(t, constvars.ErrorKindNetwork, exceptions.KindOf(err))
	found, _ := f.redis.GetInto(context.Background(), flowKey("s1", "d1"), new(models.BookingFlowRecord))
	assert.False(t, found)
	assert.Equal(t, []string{constvars.BookingOutcomeFailed}, f.attempts.outcomes())
}

func TestCheckAvailabilityMissingDate(t *testing.T) {
	f := newBookingFixture()

	_, err := f.usecase.CheckAvailability(ctxWithRequestID(), f.session, &requests.CheckAvailability{DoctorID: "d1", Time: "10:30"})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientDateRequired, customErr.ClientMessage)
	f.doctors.AssertNotCalled(t, "GetDoctor", mock.Anything, mock.Anything, mock.Anything)
}

func (f *bookingFixture) checkSlot(t *testing.T, hhmm string) {
	t.Helper()
	_, err := f.usecase.CheckAvailability(ctxWithRequestID(), f.session, &requests.CheckAvailability{DoctorID: "d1", Date: "2025-03-05", Time: hhmm})
	require.NoError(t, err)
}

func TestBookAppointmentSucceeds(t *testing.T) {
	f := newBookingFixture()
	f.expectLookups(nil)
	f.appointments.On("CheckAvailability", mock.Anything, "remote-token", mock.Anything).Return("ok", nil)
	f.checkSlot(t, "10:30")

	f.appointments.On("BookAppointment", mock.Anything, "remote-token", mock.AnythingOfType("string"), mock.MatchedBy(func(r *requests.BackendBookAppointment) bool {
		return r.UserID == "u1" && r.Time == "10:30" && r.DoctorInfo == doctorD1
	})).Return(&responses.Appointment{ID: "a1"}, "Appointment booked successfully", nil)
	f.publisher.On("PublishAppointmentBooked", mock.Anything, mock.MatchedBy(func(e *requests.AppointmentBookedEvent) bool {
		return e.EventType == constvars.EventTypeAppointmentBooked && e.EndTime == "11:00"
	})).Return(nil)

	result, err := f.usecase.BookAppointment(ctxWithRequestID(), f.session, &requests.BookAppointment{DoctorID: "d1", Date: "2025-03-05", Time: "10:30"})

	require.NoError(t, err)
	assert.Equal(t, string(FlowBooked), result.FlowState)
	assert.Equal(t, constvars.RedirectUserAppointments, result.RedirectTo)
	assert.NotEmpty(t, result.IdempotencyKey)
	assert.Equal(t, FlowBooked, f.flowState(t))
	assert.Equal(t, 1, f.locker.unlock)
	assert.Equal(t, []string{constvars.BookingOutcomeAvailable, constvars.BookingOutcomeBooked}, f.attempts.outcomes())
	f.publisher.AssertExpectations(t)
}

func TestBookAppointmentDoctorRedirect(t *testing.T) {
	f := newBookingFixture()
	f.session.IsDoctor = true
	f.expectLookups(nil)
	f.appointments.On("CheckAvailability", mock.Anything, "remote-token", mock.Anything).Return("ok", nil)
	f.checkSlot(t, "10:30")
	f.appointments.On("BookAppointment", mock.Anything, "remote-token", mock.Anything, mock.Anything).Return(&responses.Appointment{ID: "a1"}, "", nil)
	f.publisher.On("PublishAppointmentBooked", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	result, err := f.usecase.BookAppointment(ctxWithRequestID(), f.session, &requests.BookAppointment{DoctorID: "d1", Date: "2025-03-05", Time: "10:30"})

	require.NoError(t, err)
	assert.Equal(t, constvars.RedirectDoctorAppointments, result.RedirectTo)
}

func TestBookAppointmentWithoutCheck(t *testing.T) {
	f := newBookingFixture()

	_, err := f.usecase.BookAppointment(ctxWithRequestID(), f.session, &requests.BookAppointment{DoctorID: "d1", Date: "2025-03-05", Time: "10:30"})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientCheckAvailabilityFirst, customErr.ClientMessage)
	assert.Equal(t, constvars.ErrorKindValidation, customErr.Kind)
}

func TestBookAppointmentDifferentSlotThanChecked(t *testing.T) {
	f := newBookingFixture()
	f.expectLookups(nil)
	f.appointments.On("CheckAvailability", mock.Anything, "remote-token", mock.Anything).Return("ok", nil)
	f.checkSlot(t, "10:30")

	_, err := f.usecase.BookAppointment(ctxWithRequestID(), f.session, &requests.BookAppointment{DoctorID: "d1", Date: "2025-03-05", Time: "11:00"})

	assert.Equal(t, constvars.ErrorKindValidation, exceptions.KindOf(err))
	assert.Equal(t, FlowAvailable, f.flowState(t))
}

func TestBookAppointmentLockHeld(t *testing.T) {
	f := newBookingFixture()
	f.expectLookups(nil)
	f.appointments.On("CheckAvailability", mock.Anything, "remote-token", mock.Anything).Return("ok", nil)
	f.checkSlot(t, "10:30")
	f.locker.held["booking:lock:d1:2025-03-05:10:30"] = "someone-else"

	_, err := f.usecase.BookAppointment(ctxWithRequestID(), f.session, &requests.BookAppointment{DoctorID: "d1", Date: "2025-03-05", Time: "10:30"})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientSlotBeingBooked, customErr.ClientMessage)
	assert.Equal(t, FlowAvailable, f.flowState(t))
	f.appointments.AssertNotCalled(t, "BookAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookAppointmentConcurrentRequestsBookOnce(t *testing.T) {
	f := newBookingFixture()
	f.expectLookups(nil)
	f.appointments.On("CheckAvailability", mock.Anything, "remote-token", mock.Anything).Return("ok", nil)
	f.checkSlot(t, "10:30")
	f.appointments.On("BookAppointment", mock.Anything, "remote-token", mock.Anything, mock.Anything).Return(&responses.Appointment{ID: "a1"}, "", nil)
	f.publisher.On("PublishAppointmentBooked", mock.Anything, mock.Anything).Return(nil)

	loaded := make(chan struct{})
	release := make(chan struct{})
	var pauseOnce sync.Once
	f.redis.onGetInto = func(key string) {
		if key != flowKey("s1", "d1") {
			return
		}
		pauseOnce.Do(func() {
			close(loaded)
			<-release
		})
	}

	request := &requests.BookAppointment{DoctorID: "d1", Date: "2025-03-05", Time: "10:30"}
	first := make(chan error, 1)
	go func() {
		_, err := f.usecase.BookAppointment(ctxWithRequestID(), f.session, request)
		first <- err
	}()

	select {
	case <-loaded:
	case <-time.After(2 * time.Second):
		t.Fatal("first booking never loaded its flow")
	}

	_, err := f.usecase.BookAppointment(ctxWithRequestID(), f.session, request)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientSlotBeingBooked, customErr.ClientMessage)

	close(release)
	require.NoError(t, <-first)
	assert.Equal(t, FlowBooked, f.flowState(t))

	_, err = f.usecase.BookAppointment(ctxWithRequestID(), f.session, request)
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientCheckAvailabilityFirst, customErr.ClientMessage)

	f.appointments.AssertNumberOfCalls(t, "BookAppointment", 1)
}

func TestBookAppointmentServerRaceRejection(t *testing.T) {
	f := newBookingFixture()
	f.expectLookups(nil)
	f.appointments.On("CheckAvailability", mock.Anything, "remote-token", mock.Anything).Return("ok", nil)
	f.checkSlot(t, "10:30")

	taken := exceptions.BuildNewCustomError(nil, constvars.StatusConflict, "Appointment not available", "rejected")
	var firstKey string
	f.appointments.On("BookAppointment", mock.Anything, "remote-token", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { firstKey = args.String(2) }).
		Return(nil, "", taken).Once()

	_, err := f.usecase.BookAppointment(ctxWithRequestID(), f.session, &requests.BookAppointment{DoctorID: "d1", Date: "2025-03-05", Time: "10:30"})

	assert.Equal(t, constvars.ErrorKindAvailabilityConflict, exceptions.KindOf(err))
	assert.Equal(t, FlowFailed, f.flowState(t))
	assert.Empty(t, f.locker.held)
	f.publisher.AssertNotCalled(t, "PublishAppointmentBooked", mock.Anything, mock.Anything)

	f.checkSlot(t, "10:30")
	f.appointments.On("BookAppointment", mock.Anything, "remote-token", firstKey, mock.Anything).Return(&responses.Appointment{ID: "a2"}, "", nil).Once()
	f.publisher.On("PublishAppointmentBooked", mock.Anything, mock.Anything).Return(nil)

	result, err := f.usecase.BookAppointment(ctxWithRequestID(), f.session, &requests.BookAppointment{DoctorID: "d1", Date: "2025-03-05", Time: "10:30"})
	require.NoError(t, err)
	assert.Equal(t, firstKey, result.IdempotencyKey)
}

func TestStaleBookingFlowIsLoadedAsFailed(t *testing.T) {
	f := newBookingFixture()
	stale := &Flow{State: FlowBooking, Date: "2025-03-05", Time: "10:30", IdempotencyKey: "k1"}
	f.usecase.flows.now = func() time.Time { return time.Now().Add(-time.Hour) }
	require.NoError(t, f.usecase.flows.save(context.Background(), "s1", "d1", stale))
	f.usecase.flows.now = time.Now

	flow, err := f.usecase.flows.load(context.Background(), "s1", "d1")

	require.NoError(t, err)
	assert.Equal(t, FlowFailed, flow.State)
	assert.Equal(t, "k1", flow.IdempotencyKey)
}

func TestGetBookedSlots(t *testing.T) {
	f := newBookingFixture()
	f.appointments.On("GetBookedSlots", mock.Anything, "remote-token", "d1").Return([]responses.BookedSlot{
		{Date: "2025-03-06", Time: "09:00"},
		{Date: "2025-03-05", Time: "23:45"},
		{Date: "2025-03-05", Time: "garbage"},
		{Date: "2025-03-05", Time: "10:15", Status: "cancelled"},
	}, nil)

	slots, err := f.usecase.GetBookedSlots(ctxWithRequestID(), f.session, "d1")

	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, "10:15", slots[0].Time)
	assert.Equal(t, "cancelled", slots[0].Status)
	assert.Equal(t, "11:45 PM - 12:15 AM", slots[1].Range)
	assert.Equal(t, "00:15", slots[1].EndTime)
	assert.Equal(t, "06 Mar 2025", slots[2].DisplayDate)
}
