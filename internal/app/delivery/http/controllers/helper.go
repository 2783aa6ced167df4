package controllers

import (
	"context"
	"medisense-service/internal/app/models"
	"medisense-service/internal/pkg/constvars"
)

func sessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session
}
