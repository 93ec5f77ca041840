package appointments

import (
	"context"
	"errors"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/services/backend"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
)

type appointmentBackendClient struct {
	Client *backend.Client
}

func NewAppointmentBackendClient(client *backend.Client) contracts.AppointmentBackendClient {
	return &appointmentBackendClient{
		Client: client,
	}
}

func (c *appointmentBackendClient) GetBookedSlots(ctx context.Context, token, doctorID string) ([]responses.BookedSlot, error) {
	var slots []responses.BookedSlot
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.BackendPathBookedSlots, doctorID),
		Token:    token,
		Resource: constvars.BackendResourceAppointment,
	}, &slots)
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// CheckAvailability returns the API's message. A refusal from the API is reported as a
// slot conflict carrying that message.
func (c *appointmentBackendClient) CheckAvailability(ctx context.Context, token string, request *requests.BackendCheckAvailability) (string, error) {
	message, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodPost,
		Path:     constvars.BackendPathCheckAvailability,
		Token:    token,
		Body:     request,
		Resource: constvars.BackendResourceAppointment,
	}, nil)
	if err != nil {
		return "", asSlotConflict(err)
	}
	return message, nil
}

func (c *appointmentBackendClient) BookAppointment(ctx context.Context, token, idempotencyKey string, request *requests.BackendBookAppointment) (*responses.Appointment, string, error) {
	appointment := new(responses.Appointment)
	message, err := c.Client.Do(ctx, backend.Call{
		Method:         constvars.MethodPost,
		Path:           constvars.BackendPathBookAppointment,
		Token:          token,
		IdempotencyKey: idempotencyKey,
		Body:           request,
		Resource:       constvars.BackendResourceAppointment,
	}, appointment)
	if err != nil {
		return nil, "", asSlotConflict(err)
	}
	return appointment, message, nil
}

func (c *appointmentBackendClient) GetUserAppointments(ctx context.Context, token, userID string) ([]responses.Appointment, error) {
	return c.list(ctx, token, fmt.Sprintf(constvars.BackendPathUserAppointments, userID))
}

func (c *appointmentBackendClient) GetDoctorAppointments(ctx context.Context, token, userID string) ([]responses.Appointment, error) {
	return c.list(ctx, token, fmt.Sprintf(constvars.BackendPathDoctorAppointment, userID))
}

func (c *appointmentBackendClient) list(ctx context.Context, token, path string) ([]responses.Appointment, error) {
	var appointments []responses.Appointment
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodGet,
		Path:     path,
		Token:    token,
		Resource: constvars.BackendResourceAppointment,
	}, &appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// asSlotConflict turns a validation-class refusal into an availability conflict. Auth failures,
// transport failures and server errors pass through untouched.
func asSlotConflict(err error) error {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		return err
	}
	switch customErr.StatusCode {
	case constvars.StatusBadRequest, constvars.StatusConflict:
		customErr.StatusCode = constvars.StatusConflict
		customErr.Kind = constvars.ErrorKindAvailabilityConflict
		if customErr.ClientMessage == "" || customErr.ClientMessage == constvars.ErrClientCannotProcessRequest {
			customErr.ClientMessage = constvars.ErrClientSlotUnavailable
		}
	}
	return customErr
}
