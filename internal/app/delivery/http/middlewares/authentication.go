package middlewares

import (
	"context"
	"medisense-service/internal/app/models"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/exceptions"
	"medisense-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate rejects requests without a live logged-in session.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.resolveSession(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
	})
}

// OptionalAuthenticate attaches the session when a valid token is present and
// lets the request through as logged out otherwise.
func (m *Middlewares) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.resolveSession(r)
		if err != nil {
			m.Log.Debug("Middlewares.OptionalAuthenticate continuing without session",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
	})
}

// ConsultationGuard picks the guard for the consultation routes.
func (m *Middlewares) ConsultationGuard(next http.Handler) http.Handler {
	if m.InternalConfig.Consultant.RequiresLogin {
		return m.Authenticate(next)
	}
	return m.OptionalAuthenticate(next)
}

func (m *Middlewares) resolveSession(r *http.Request) (*models.Session, error) {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader == "" || !strings.HasPrefix(authHeader, constvars.BearerTokenPrefix) {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix))
	sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	return m.SessionService.GetSession(r.Context(), sessionID)
}

func withSession(ctx context.Context, session *models.Session) context.Context {
	ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, session.SessionID)
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
}
