package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "requestID"
)

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingFhirUrlKey    = "fhir_url"
	LoggingStrategyKey   = "strategy"
)
