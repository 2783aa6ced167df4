package contracts

import (
	"context"
	"medisense-service/internal/app/models"
)

type ConsultationEventPublisher interface {
	PublishConsultationCompleted(ctx context.Context, event *models.ConsultationEvent) error
}
