package appointments

import (
	"context"
	"errors"
	"medibook-service/internal/app/services/backend"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBookedSlots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointment/booked/d1", r.URL.Path)
		w.Write([]byte(`{"status":true,"data":[{"date":"2025-03-05","time":"10:00"},{"date":"2025-03-05","time":"11:00","status":"cancelled"}]}`))
	}))
	defer server.Close()

	client := NewAppointmentBackendClient(backend.NewClient(server.URL, time.Second))
	slots, err := client.GetBookedSlots(context.Background(), "token", "d1")

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "10:00", slots[0].Time)
	assert.Equal(t, "cancelled", slots[1].Status)
}

func TestCheckAvailabilityRefusalIsConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body requests.BackendCheckAvailability
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "d1", body.DoctorID)
		assert.Equal(t, "10:15", body.Time)
		w.Write([]byte(`{"status":false,"message":"Appointment not available"}`))
	}))
	defer server.Close()

	client := NewAppointmentBackendClient(backend.NewClient(server.URL, time.Second))
	_, err := client.CheckAvailability(context.Background(), "token", &requests.BackendCheckAvailability{DoctorID: "d1", Date: "2025-03-05", Time: "10:15"})

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusConflict, customErr.StatusCode)
	assert.Equal(t, "AvailabilityConflict", customErr.Kind)
	assert.Equal(t, "Appointment not available", customErr.ClientMessage)
}

func TestBookAppointmentUnauthorizedStaysUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":false,"message":"Auth failed"}`))
	}))
	defer server.Close()

	client := NewAppointmentBackendClient(backend.NewClient(server.URL, time.Second))
	_, _, err := client.BookAppointment(context.Background(), "token", "key", &requests.BackendBookAppointment{})

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
}

func TestBookAppointmentSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-9", r.Header.Get("Idempotency-Key"))
		w.Write([]byte(`{"status":true,"message":"Appointment booked successfully","data":{"_id":"a1","doctorId":"d1","date":"2025-03-05","time":"10:30","status":"pending"}}`))
	}))
	defer server.Close()

	client := NewAppointmentBackendClient(backend.NewClient(server.URL, time.Second))
	appointment, message, err := client.BookAppointment(context.Background(), "token", "key-9", &requests.BackendBookAppointment{DoctorID: "d1"})

	require.NoError(t, err)
	assert.Equal(t, "Appointment booked successfully", message)
	assert.Equal(t, "a1", appointment.ID)
}
