package auth

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

type authBackendClient struct {
	Client *backend.Client
}

func NewAuthBackendClient(client *backend.Client) contracts.AuthBackendClient {
	return &authBackendClient{
		Client: client,
	}
}

// Login returns the token issued by the booking API together with the user it belongs to.
func (c *authBackendClient) Login(ctx context.Context, request *requests.Login) (*responses.BackendLogin, error) {
	user := new(responses.User)
	envelope, err := c.Client.DoEnvelope(ctx, backend.Call{
		Method:   constvars.MethodPost,
		Path:     constvars.BackendPathLogin,
		Body:     request,
		Resource: constvars.BackendResourceAuth,
	}, user)
	if err != nil {
		return nil, err
	}

	if envelope.Token == "" {
		return nil, exceptions.ErrBackendDecodeResponse(errors.New("login response carries no token"), constvars.BackendResourceAuth)
	}

	return &responses.BackendLogin{
		Token: envelope.Token,
		User:  *user,
	}, nil
}

func (c *authBackendClient) Signup(ctx context.Context, request *requests.Signup) (string, error) {
	return c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodPost,
		Path:     constvars.BackendPathSignup,
		Body:     request,
		Resource: constvars.BackendResourceAuth,
	}, nil)
}

func (c *authBackendClient) Verify(ctx context.Context, token, userID string) (*responses.User, error) {
	user := new(responses.User)
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.BackendPathVerify, userID),
		Token:    token,
		Resource: constvars.BackendResourceAuth,
	}, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}
