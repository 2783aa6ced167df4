package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCredentialsEmpty              = "Username and password cannot be empty."
	ErrClientUsernameAlreadyExists         = "Username already exists! Please choose a different username."
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password!"
	ErrClientInvalidAuthAction             = "Invalid action!"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientFileNotFound                  = "the requested file does not exist"
	ErrClientTooManyRequests               = "too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotSaveUpload         = "cannot save uploaded file %s"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevCredentialsEmpty         = "username or password empty after trimming"
	ErrDevUsernameAlreadyExists    = "username already exists"
	ErrDevInvalidAuthAction        = "unknown auth action %q"
	ErrDevInvalidFileName          = "invalid file name %q"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSessionNotFound       = "session not found or already ended"

	// Database messages
	ErrDevDBFailedToFindDocument   = "failed to find document"
	ErrDevDBFailedToInsertDocument = "failed to insert document"
	ErrDevDBFailedToCreateIndex    = "failed to create index"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// Hosted AI service messages
	ErrDevConfigMissingAPIKey   = "%s API key is missing, set it in the environment variables"
	ErrDevMediaFileUnreadable   = "cannot read media file %s"
	ErrDevTranscriptionFailed   = "failed to transcribe audio with %s"
	ErrDevAnalysisClientFailed  = "failed to initialize %s analysis client"
	ErrDevAnalysisFailed        = "failed to analyze image with %s"
	ErrDevAnalysisEmptyResponse = "%s returned no choices"
	ErrDevSynthesisFailed       = "failed to synthesize speech"
	ErrDevSynthesisEmptyText    = "nothing to synthesize, text is empty"

	// Storage and messaging messages
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
)
