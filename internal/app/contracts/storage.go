package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"time"
)

type Storage interface {
	UploadObject(ctx context.Context, request *requests.UploadObject) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
