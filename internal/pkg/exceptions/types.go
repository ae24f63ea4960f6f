package exceptions

import (
	"annuaire-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrNoSearchCriteria = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientNoSearchCriteria, constvars.ErrDevNoSearchCriteria)
	}
	ErrInvalidContinuationToken = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidContinuationToken, constvars.ErrDevInvalidContinuationToken)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientRegistryUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrGetFHIRResource = func(err error, resourceType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientRegistryUnavailable, fmt.Sprintf(constvars.ErrDevGetFHIRResourceFormat, resourceType))
	}
	ErrDecodeResponse = func(err error, resourceType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientRegistryUnavailable, fmt.Sprintf(constvars.ErrDevDecodeResponseFormat, resourceType))
	}
	ErrMalformedReference = func(err error, reference string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientRegistryUnavailable, fmt.Sprintf(constvars.ErrDevMalformedReferenceFormat, reference))
	}
	ErrRegistryQuotaExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientRegistryQuotaExceeded, constvars.ErrDevRegistryQuotaExceeded)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
)
