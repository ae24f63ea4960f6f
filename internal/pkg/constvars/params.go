package constvars

// Inbound query parameter names of the search endpoint.
const (
	QueryParamName              = "name"
	QueryParamCity              = "city"
	QueryParamSpecialty         = "specialty"
	QueryParamSpecialtyCode     = "specialty_code"
	QueryParamNationalID        = "national_id"
	QueryParamCount             = "count"
	QueryParamContinuationToken = "continuation_token"
)
