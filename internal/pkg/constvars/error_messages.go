package constvars

// Client-facing error messages.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request right now"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientNoSearchCriteria              = "At least one search criterion is required (name, city, specialty, specialty code or national identifier)"
	ErrClientInvalidContinuationToken      = "The continuation token is invalid or does not belong to this service"
	ErrClientRegistryUnavailable           = "The national registry could not be reached, please try again later"
	ErrClientRegistryQuotaExceeded         = "The registry call quota has been reached, please retry in a moment"
	ErrClientServerLongRespond             = "Server takes too long to respond"
)

// Developer-facing error messages.
const (
	ErrDevValidationFailed         = "Request validation failed"
	ErrDevNoSearchCriteria         = "no identifying search field supplied"
	ErrDevInvalidContinuationToken = "continuation token does not originate from the configured registry base URL"
	ErrDevCreateHTTPRequest        = "Failed to create HTTP request"
	ErrDevSendHTTPRequest          = "Failed to send HTTP request"
	ErrDevGetFHIRResourceFormat    = "Failed to fetch FHIR resource: %s"
	ErrDevDecodeResponseFormat     = "Failed to decode FHIR response for resource: %s"
	ErrDevMalformedReferenceFormat = "malformed FHIR reference: %q"
	ErrDevRegistryQuotaExceeded    = "outbound registry call quota exhausted for the current window"
	ErrDevServerDeadlineExceeded   = "Server deadline exceeded"
)
