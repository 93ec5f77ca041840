package storage

import (
	"bytes"
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) UploadObject(ctx context.Context, request *requests.UploadObject) (string, error) {
	_, err := m.MinioClient.PutObject(
		ctx,
		request.BucketName,
		request.ObjectName,
		bytes.NewReader(request.Data),
		int64(len(request.Data)),
		minio.PutObjectOptions{
			ContentType: request.ContentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, request.BucketName)
	}

	return request.ObjectName, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiryTime, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, bucketName)
	}
	return presignedURL.String(), nil
}
