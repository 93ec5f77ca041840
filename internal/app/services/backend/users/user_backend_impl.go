package users

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/services/backend"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type userBackendClient struct {
	Client *backend.Client
}

func NewUserBackendClient(client *backend.Client) contracts.UserBackendClient {
	return &userBackendClient{
		Client: client,
	}
}

func (c *userBackendClient) GetUser(ctx context.Context, token, userID string) (*responses.User, error) {
	user := new(responses.User)
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.BackendPathUser, userID),
		Token:    token,
		Resource: constvars.BackendResourceUser,
	}, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *userBackendClient) GetUsers(ctx context.Context, token string) ([]responses.User, error) {
	var users []responses.User
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodGet,
		Path:     constvars.BackendPathUsers,
		Token:    token,
		Resource: constvars.BackendResourceUser,
	}, &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (c *userBackendClient) UpdateUser(ctx context.Context, token string, request *requests.UpdateProfile) (*responses.User, error) {
	user := new(responses.User)
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodPut,
		Path:     fmt.Sprintf(constvars.BackendPathUser, request.UserID),
		Token:    token,
		Body:     request,
		Resource: constvars.BackendResourceUser,
	}, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *userBackendClient) UpdateProfilePicture(ctx context.Context, token, userID, objectName string) (*responses.User, error) {
	user := new(responses.User)
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodPut,
		Path:     fmt.Sprintf(constvars.BackendPathUser, userID),
		Token:    token,
		Body:     map[string]string{"profilePicture": objectName},
		Resource: constvars.BackendResourceUser,
	}, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *userBackendClient) DeleteUser(ctx context.Context, token, userID string) error {
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodDelete,
		Path:     fmt.Sprintf(constvars.BackendPathUser, userID),
		Token:    token,
		Resource: constvars.BackendResourceUser,
	}, nil)
	return err
}
