package contracts

import (
	"context"
	"time"
)

type AudioArchive interface {
	UploadAudio(ctx context.Context, filePath, objectName string) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error)
}
