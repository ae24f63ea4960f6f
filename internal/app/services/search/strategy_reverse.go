package search

import (
	"annuaire-service/internal/pkg/constvars"
	"annuaire-service/internal/pkg/dto/requests"
	"annuaire-service/internal/pkg/dto/responses"
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

// searchBySpecialtyAndCity resolves the combination of a qualification code
// and a city, which the registry cannot answer in one query, by walking the
// graph backwards in three phases: organizations in the city, then the roles
// attached to those organizations, then the practitioners behind those roles
// re-fetched under the qualification constraint. Phase ceilings bound the
// fanout, so coverage is deliberately partial on large cities.
func (uc *searchUsecase) searchBySpecialtyAndCity(ctx context.Context, request *requests.SearchPractitioners, pageSize int) (*responses.SearchEnvelope, error) {
	organizationIDs, err := uc.collectOrganizationIDs(ctx, request.City)
	if err != nil {
		return nil, err
	}
	if len(organizationIDs) == 0 {
		return emptyEnvelope(fmt.Sprintf(constvars.SearchNoFacilityInCityMessageFormat, request.City)), nil
	}

	roles, organizations, err := uc.Fetcher.FetchRolesForOrganizations(ctx, organizationIDs)
	if err != nil {
		return nil, err
	}

	practitionerIDs := make([]string, 0, len(roles))
	for _, role := range roles {
		practitionerIDs = append(practitionerIDs, role.PractitionerID)
	}

	practitioners, err := uc.Fetcher.FetchPractitionersByIDs(ctx, practitionerIDs, request.SpecialtyCode)
	if err != nil {
		return nil, err
	}

	results := mergeResults(practitioners, roles, organizations)
	results = filterBySpecialty(results, request.Specialty)
	if len(results) > pageSize {
		results = results[:pageSize]
	}

	return &responses.SearchEnvelope{
		Total:   len(results),
		Results: results,
	}, nil
}

// collectOrganizationIDs pages through organizations whose address matches
// the city, following next links up to the page ceiling.
func (uc *searchUsecase) collectOrganizationIDs(ctx context.Context, city string) ([]string, error) {
	params := url.Values{}
	params.Set(constvars.FhirParamAddressCity, city)
	params.Set(constvars.FhirParamCount, strconv.Itoa(constvars.SearchOrganizationPageSize))

	bundle, err := uc.AnnuaireClient.SearchOrganizations(ctx, params)
	if err != nil {
		return nil, err
	}

	var ids []string
	pagesFetched := 1
	for {
		_, _, organizations, err := splitBundle(bundle)
		if err != nil {
			return nil, err
		}
		for _, organization := range organizations {
			ids = append(ids, organization.ID)
		}

		next := bundle.NextLink()
		if next == "" || pagesFetched >= constvars.SearchMaxOrganizationPages {
			if next != "" {
				requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				uc.Log.Debug("organization page ceiling reached",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Int("pages_fetched", pagesFetched),
				)
			}
			break
		}

		bundle, err = uc.AnnuaireClient.SearchByURL(ctx, next)
		if err != nil {
			return nil, err
		}
		pagesFetched++
	}

	return dedupeStrings(ids), nil
}
