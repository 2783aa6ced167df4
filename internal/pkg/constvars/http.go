package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

const (
	MIMETextHTMLCharsetUTF8 = "text/html; charset=utf-8"
	MIMEApplicationJSON     = "application/json"
	MIMEMultipartForm       = "multipart/form-data"
	MIMEAudioMPEG           = "audio/mpeg"
	MIMEImageJPEG           = "image/jpeg"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusRequestTimeout      = 408
	StatusConflict            = 409
	StatusRequestEntityTooBig = 413
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"
	HeaderReferer       = "Referer"
	HeaderXRequestID    = "X-Request-ID"
)
