package storage

import (
	"context"
	"medisense-service/internal/app/contracts"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/exceptions"
	"medisense-service/internal/pkg/utils"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

// NewMinioStorage archives reply audio in a single bucket.
func NewMinioStorage(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.AudioArchive {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
	}
}

func (m *minioStorage) UploadAudio(ctx context.Context, filePath, objectName string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("minioStorage.UploadAudio called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, m.BucketName),
		zap.String(constvars.LoggingFilePathKey, filePath),
	)

	file, err := os.Open(filePath)
	if err != nil {
		return "", exceptions.ErrMediaFileUnreadable(err, filePath)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return "", exceptions.ErrMediaFileUnreadable(err, filePath)
	}

	_, err = m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, fileInfo.Size(), minio.PutObjectOptions{
		ContentType: constvars.MIMEAudioMPEG,
	})
	if err != nil {
		m.Log.Error("minioStorage.UploadAudio error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return objectName, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiryTime, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, m.BucketName)
	}
	return presignedURL.String(), nil
}
