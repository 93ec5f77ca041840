package doctors

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/services/backend"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type doctorBackendClient struct {
	Client *backend.Client
}

func NewDoctorBackendClient(client *backend.Client) contracts.DoctorBackendClient {
	return &doctorBackendClient{
		Client: client,
	}
}

func (c *doctorBackendClient) GetDoctor(ctx context.Context, token, doctorID string) (*responses.Doctor, error) {
	doctor := new(responses.Doctor)
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.BackendPathDoctor, doctorID),
		Token:    token,
		Resource: constvars.BackendResourceDoctor,
	}, doctor)
	if err != nil {
		return nil, err
	}
	return doctor, nil
}

func (c *doctorBackendClient) GetApprovedDoctors(ctx context.Context, token string) ([]responses.Doctor, error) {
	return c.list(ctx, token, constvars.BackendPathApprovedDoctors)
}

func (c *doctorBackendClient) GetDoctors(ctx context.Context, token string) ([]responses.Doctor, error) {
	return c.list(ctx, token, constvars.BackendPathDoctors)
}

func (c *doctorBackendClient) list(ctx context.Context, token, path string) ([]responses.Doctor, error) {
	var doctors []responses.Doctor
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodGet,
		Path:     path,
		Token:    token,
		Resource: constvars.BackendResourceDoctor,
	}, &doctors)
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (c *doctorBackendClient) ApplyDoctor(ctx context.Context, token string, request *requests.ApplyDoctor) (*responses.Doctor, error) {
	doctor := new(responses.Doctor)
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodPost,
		Path:     constvars.BackendPathApplyDoctor,
		Token:    token,
		Body:     request,
		Resource: constvars.BackendResourceDoctor,
	}, doctor)
	if err != nil {
		return nil, err
	}
	return doctor, nil
}

// UpdateDoctor replaces the doctor profile owned by request.UserID.
func (c *doctorBackendClient) UpdateDoctor(ctx context.Context, token string, request *requests.ApplyDoctor) (*responses.Doctor, error) {
	doctor := new(responses.Doctor)
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodPut,
		Path:     fmt.Sprintf(constvars.BackendPathDoctor, request.UserID),
		Token:    token,
		Body:     request,
		Resource: constvars.BackendResourceDoctor,
	}, doctor)
	if err != nil {
		return nil, err
	}
	return doctor, nil
}

func (c *doctorBackendClient) UpdateDoctorStatus(ctx context.Context, token string, request *requests.UpdateDoctorStatus) (*responses.Doctor, error) {
	doctor := new(responses.Doctor)
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodPatch,
		Path:     fmt.Sprintf(constvars.BackendPathDoctorStatus, request.DoctorID),
		Token:    token,
		Body:     request,
		Resource: constvars.BackendResourceDoctor,
	}, doctor)
	if err != nil {
		return nil, err
	}
	return doctor, nil
}
