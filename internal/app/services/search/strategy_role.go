package search

import (
	"annuaire-service/internal/pkg/constvars"
	"annuaire-service/internal/pkg/dto/requests"
	"annuaire-service/internal/pkg/dto/responses"
	"context"
	"net/url"
	"strconv"
)

// searchByRoleAttributes queries roles directly, chaining the city through
// the role's organization and including both sides of the role graph in a
// single round trip. The textual filters then run locally over the merged
// results, since the registry's native matching is not substring based.
func (uc *searchUsecase) searchByRoleAttributes(ctx context.Context, request *requests.SearchPractitioners, pageSize int) (*responses.SearchEnvelope, error) {
	params := url.Values{}
	if request.City != "" {
		params.Set(constvars.FhirParamRoleOrganizationCity, request.City)
	}
	params.Add(constvars.FhirParamInclude, constvars.FhirIncludeRoleOrganization)
	params.Add(constvars.FhirParamInclude, constvars.FhirIncludeRolePractitioner)
	params.Add(constvars.FhirParamInclude, constvars.FhirIncludeRoleLocation)
	params.Set(constvars.FhirParamCount, strconv.Itoa(pageSize))

	bundle, err := uc.AnnuaireClient.SearchPractitionerRoles(ctx, params)
	if err != nil {
		return nil, err
	}

	practitioners, roles, organizations, err := splitBundle(bundle)
	if err != nil {
		return nil, err
	}

	upstreamTotal := bundle.Total
	last := bundle
	if request.HasPostFilters() {
		next := bundle.NextLink()
		for i := 0; i < constvars.SearchMaxExtraFilterPages && next != ""; i++ {
			page, err := uc.AnnuaireClient.SearchByURL(ctx, next)
			if err != nil {
				return nil, err
			}
			morePractitioners, moreRoles, moreOrganizations, err := splitBundle(page)
			if err != nil {
				return nil, err
			}
			practitioners = append(practitioners, morePractitioners...)
			roles = append(roles, moreRoles...)
			organizations = append(organizations, moreOrganizations...)
			last = page
			next = page.NextLink()
		}
	}

	results := mergeResultsFromRoles(roles, practitioners, organizations)
	results = filterByCity(results, request.City)
	results = filterBySpecialty(results, request.Specialty)
	if len(results) > pageSize {
		results = results[:pageSize]
	}

	return &responses.SearchEnvelope{
		Total:             len(results),
		UpstreamTotal:     upstreamTotal,
		Results:           results,
		ContinuationToken: continuationToken(last),
	}, nil
}
