package search

import (
	"annuaire-service/internal/pkg/constvars"
	"annuaire-service/internal/pkg/dto/requests"
	"annuaire-service/internal/pkg/dto/responses"
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// searchByIdentifier looks a practitioner up by national identifier in the
// RPPS namespace. The lookup is a single exact-match query and every other
// search field is ignored, no post-filters apply.
func (uc *searchUsecase) searchByIdentifier(ctx context.Context, request *requests.SearchPractitioners, pageSize int) (*responses.SearchEnvelope, error) {
	params := url.Values{}
	params.Set(constvars.FhirParamIdentifier, fmt.Sprintf("%s|%s", constvars.FhirSystemRPPS, request.NationalID))
	params.Set(constvars.FhirParamCount, strconv.Itoa(constvars.SearchIdentifierPageSize))

	bundle, err := uc.AnnuaireClient.SearchPractitioners(ctx, params)
	if err != nil {
		return nil, err
	}

	practitioners, err := normalizePractitionerEntries(bundle)
	if err != nil {
		return nil, err
	}

	results, err := uc.finishPractitionerSearch(ctx, practitioners, "", "", pageSize)
	if err != nil {
		return nil, err
	}

	return &responses.SearchEnvelope{
		Total:         len(results),
		UpstreamTotal: bundle.Total,
		Results:       results,
	}, nil
}
