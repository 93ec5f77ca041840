package notifications

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/services/backend"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
)

type notificationBackendClient struct {
	Client *backend.Client
}

func NewNotificationBackendClient(client *backend.Client) contracts.NotificationBackendClient {
	return &notificationBackendClient{
		Client: client,
	}
}

func (c *notificationBackendClient) MarkAllSeen(ctx context.Context, token, userID string) (*responses.User, error) {
	user := new(responses.User)
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodPost,
		Path:     fmt.Sprintf(constvars.BackendPathNotificationsSeen, userID),
		Token:    token,
		Resource: constvars.BackendResourceNotification,
	}, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *notificationBackendClient) DeleteAllSeen(ctx context.Context, token, userID string) (*responses.User, error) {
	user := new(responses.User)
	_, err := c.Client.Do(ctx, backend.Call{
		Method:   constvars.MethodDelete,
		Path:     fmt.Sprintf(constvars.BackendPathNotifications, userID),
		Token:    token,
		Resource: constvars.BackendResourceNotification,
	}, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}
