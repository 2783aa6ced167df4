package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingUsernameKey      = "username"
	LoggingSessionIDKey     = "session_id"
	LoggingFilePathKey      = "file_path"
	LoggingModelKey         = "model"
	LoggingProviderKey      = "provider"
	LoggingBucketNameKey    = "bucket_name"
	LoggingQueueNameKey     = "queue_name"
	LoggingTextLengthKey    = "text_length"
	LoggingChunkCountKey    = "chunk_count"
	LoggingErrorTypeKey     = "error_type"
	LoggingResponseKey      = "response"
	LoggingHasAudioKey      = "has_audio"
	LoggingHasImageKey      = "has_image"
	LoggingHasReplyAudioKey = "has_reply_audio"
)
