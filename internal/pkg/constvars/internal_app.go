package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	ResourceAuth          = "auth"
	ResourceConsultations = "consultations"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"

	DefaultJWTSecret = "anyjwt"
)

const (
	RedisSessionKeyPrefix = "session:"
	JWTClaimSessionID     = "session_id"
	BearerTokenPrefix     = "Bearer "
)
