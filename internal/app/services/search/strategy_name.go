package search

import (
	"annuaire-service/internal/pkg/constvars"
	"annuaire-service/internal/pkg/dto/requests"
	"annuaire-service/internal/pkg/dto/responses"
	"annuaire-service/internal/pkg/fhir_dto"
	"context"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type namePlan struct {
	label  string
	params url.Values
}

// buildNamePlans produces the candidate query plans for a free-text name,
// evaluated in order until one yields a non-empty result set:
//  1. first token as family name, remaining tokens as given names
//  2. last token as family name, leading tokens as given names
//  3. first token alone as family name (single-token searches start here)
//  4. the original string as an unstructured name query
//
// Each plan is additionally constrained by the qualification code when one
// is supplied.
func buildNamePlans(name, qualificationCode string, pageSize int) []namePlan {
	tokens := strings.Fields(name)
	plans := make([]namePlan, 0, constvars.SearchMaxNamePlans)
	if len(tokens) == 0 {
		return plans
	}

	newPlan := func(label string) namePlan {
		params := url.Values{}
		params.Set(constvars.FhirParamCount, strconv.Itoa(pageSize))
		if qualificationCode != "" {
			params.Set(constvars.FhirParamQualification, qualificationCode)
		}
		return namePlan{label: label, params: params}
	}

	if len(tokens) > 1 {
		familyFirst := newPlan("family-first")
		familyFirst.params.Set(constvars.FhirParamFamily, tokens[0])
		familyFirst.params.Set(constvars.FhirParamGiven, strings.Join(tokens[1:], " "))
		plans = append(plans, familyFirst)

		familyLast := newPlan("family-last")
		familyLast.params.Set(constvars.FhirParamFamily, tokens[len(tokens)-1])
		familyLast.params.Set(constvars.FhirParamGiven, strings.Join(tokens[:len(tokens)-1], " "))
		plans = append(plans, familyLast)
	}

	familyOnly := newPlan("family-only")
	familyOnly.params.Set(constvars.FhirParamFamily, tokens[0])
	plans = append(plans, familyOnly)

	unstructured := newPlan("unstructured")
	unstructured.params.Set(constvars.FhirParamName, name)
	plans = append(plans, unstructured)

	return plans
}

// runNamePlans executes the plans in order and accepts the first one
// returning at least one entry. No union or dedup across plans; an upstream
// failure aborts the whole chain. Returns nil when every plan came back
// empty.
func (uc *searchUsecase) runNamePlans(ctx context.Context, plans []namePlan) (*fhir_dto.Bundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	for _, plan := range plans {
		bundle, err := uc.AnnuaireClient.SearchPractitioners(ctx, plan.params)
		if err != nil {
			return nil, err
		}
		if len(bundle.Entry) > 0 {
			uc.Log.Debug("name plan accepted",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("plan", plan.label),
			)
			return bundle, nil
		}
	}
	return nil, nil
}

func (uc *searchUsecase) searchByName(ctx context.Context, request *requests.SearchPractitioners, pageSize int) (*responses.SearchEnvelope, error) {
	plans := buildNamePlans(request.Name, "", pageSize)

	bundle, err := uc.runNamePlans(ctx, plans)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return emptyEnvelope(""), nil
	}

	return uc.finishNameSearch(ctx, bundle, request, pageSize)
}

// finishNameSearch is the shared tail of the name and qualification
// strategies: normalize the accepted page, widen it before post-filtering,
// resolve the role graph, merge, filter and cap.
func (uc *searchUsecase) finishNameSearch(ctx context.Context, bundle *fhir_dto.Bundle, request *requests.SearchPractitioners, pageSize int) (*responses.SearchEnvelope, error) {
	practitioners, err := normalizePractitionerEntries(bundle)
	if err != nil {
		return nil, err
	}

	upstreamTotal := bundle.Total
	last := bundle
	if request.HasPostFilters() {
		practitioners, last, err = uc.collectExtraPages(ctx, bundle, practitioners)
		if err != nil {
			return nil, err
		}
	}

	results, err := uc.finishPractitionerSearch(ctx, practitioners, request.City, request.Specialty, pageSize)
	if err != nil {
		return nil, err
	}

	envelope := &responses.SearchEnvelope{
		Total:             len(results),
		UpstreamTotal:     upstreamTotal,
		Results:           results,
		ContinuationToken: continuationToken(last),
	}
	if !request.HasPostFilters() && upstreamTotal != nil && *upstreamTotal > pageSize {
		envelope.Message = constvars.SearchTooManyResultsMessage
	}
	return envelope, nil
}
