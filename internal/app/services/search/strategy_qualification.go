package search

import (
	"annuaire-service/internal/pkg/constvars"
	"annuaire-service/internal/pkg/dto/requests"
	"annuaire-service/internal/pkg/dto/responses"
	"context"
	"net/url"
	"strconv"
)

// searchByQualification runs the name fallback chain with every plan
// additionally constrained by the qualification code, falling through to a
// query constrained by the code alone when no name plan yields results.
// A city without a name cannot be combined with a qualification code on the
// registry's native query surface and delegates to the reverse lookup; a
// city alongside a name is applied as a post-filter only, never sent
// upstream.
func (uc *searchUsecase) searchByQualification(ctx context.Context, request *requests.SearchPractitioners, pageSize int) (*responses.SearchEnvelope, error) {
	if request.City != "" && request.Name == "" {
		return uc.searchBySpecialtyAndCity(ctx, request, pageSize)
	}

	plans := buildNamePlans(request.Name, request.SpecialtyCode, pageSize)

	fallbackParams := url.Values{}
	fallbackParams.Set(constvars.FhirParamQualification, request.SpecialtyCode)
	fallbackParams.Set(constvars.FhirParamCount, strconv.Itoa(pageSize))
	plans = append(plans, namePlan{label: "qualification-only", params: fallbackParams})

	bundle, err := uc.runNamePlans(ctx, plans)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return emptyEnvelope(""), nil
	}

	return uc.finishNameSearch(ctx, bundle, request, pageSize)
}
