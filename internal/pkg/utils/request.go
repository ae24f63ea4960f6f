package utils

import (
	"annuaire-service/internal/pkg/constvars"
	"annuaire-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
)

// BuildSearchRequest binds the search query surface from the inbound URL.
// Count parsing is forgiving; the usecase clamps it afterwards.
func BuildSearchRequest(r *http.Request) *requests.SearchPractitioners {
	query := r.URL.Query()

	count, err := strconv.Atoi(query.Get(constvars.QueryParamCount))
	if err != nil || count < 0 {
		count = 0
	}

	return &requests.SearchPractitioners{
		Name:              strings.TrimSpace(query.Get(constvars.QueryParamName)),
		City:              strings.TrimSpace(query.Get(constvars.QueryParamCity)),
		Specialty:         strings.TrimSpace(query.Get(constvars.QueryParamSpecialty)),
		SpecialtyCode:     strings.TrimSpace(query.Get(constvars.QueryParamSpecialtyCode)),
		NationalID:        strings.TrimSpace(query.Get(constvars.QueryParamNationalID)),
		Count:             count,
		ContinuationToken: strings.TrimSpace(query.Get(constvars.QueryParamContinuationToken)),
	}
}
