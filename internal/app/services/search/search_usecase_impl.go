package search

import (
	"annuaire-service/internal/app/config"
	"annuaire-service/internal/app/contracts"
	"annuaire-service/internal/app/models"
	"annuaire-service/internal/pkg/constvars"
	"annuaire-service/internal/pkg/dto/requests"
	"annuaire-service/internal/pkg/dto/responses"
	"annuaire-service/internal/pkg/exceptions"
	"annuaire-service/internal/pkg/fhir_dto"
	"context"
	"strings"

	"go.uber.org/zap"
)

type searchUsecase struct {
	AnnuaireClient contracts.AnnuaireClient
	Fetcher        *batchFetcher
	Log            *zap.Logger
	BaseUrl        string
	MaxPageSize    int
}

func NewSearchUsecase(annuaireClient contracts.AnnuaireClient, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SearchUsecase {
	return &searchUsecase{
		AnnuaireClient: annuaireClient,
		Fetcher:        newBatchFetcher(annuaireClient, logger),
		Log:            logger,
		BaseUrl:        strings.TrimSuffix(internalConfig.Annuaire.BaseUrl, "/"),
		MaxPageSize:    internalConfig.App.SearchMaxPageSize,
	}
}

// Search selects exactly one execution strategy by strict field precedence,
// first match wins. No remote call is issued when no identifying field was
// supplied.
func (uc *searchUsecase) Search(ctx context.Context, request *requests.SearchPractitioners) (*responses.SearchEnvelope, error) {
	pageSize := uc.clampPageSize(request.Count)

	switch {
	case request.ContinuationToken != "":
		return uc.resume(ctx, request, pageSize)
	case request.NationalID != "":
		uc.logStrategy(ctx, "identifier")
		return uc.searchByIdentifier(ctx, request, pageSize)
	case request.SpecialtyCode != "":
		uc.logStrategy(ctx, "qualification")
		return uc.searchByQualification(ctx, request, pageSize)
	case request.Name != "":
		uc.logStrategy(ctx, "name")
		return uc.searchByName(ctx, request, pageSize)
	case request.City != "" || request.Specialty != "":
		uc.logStrategy(ctx, "role-attributes")
		return uc.searchByRoleAttributes(ctx, request, pageSize)
	default:
		return nil, exceptions.ErrNoSearchCriteria(nil)
	}
}

// resume replays a previously returned continuation link verbatim and
// assembles the page generically, since the originating strategy is not
// recoverable from the token alone. Tokens not issued against the configured
// registry base URL are rejected before any remote call.
func (uc *searchUsecase) resume(ctx context.Context, request *requests.SearchPractitioners, pageSize int) (*responses.SearchEnvelope, error) {
	if !strings.HasPrefix(request.ContinuationToken, uc.BaseUrl) {
		return nil, exceptions.ErrInvalidContinuationToken(nil)
	}
	uc.logStrategy(ctx, "resume")

	bundle, err := uc.AnnuaireClient.SearchByURL(ctx, request.ContinuationToken)
	if err != nil {
		return nil, err
	}

	practitioners, roles, organizations, err := splitBundle(bundle)
	if err != nil {
		return nil, err
	}

	var results []responses.MergedResult
	if len(roles) > 0 {
		results = mergeResultsFromRoles(roles, practitioners, organizations)
		results = filterByCity(results, request.City)
		results = filterBySpecialty(results, request.Specialty)
		if len(results) > pageSize {
			results = results[:pageSize]
		}
	} else {
		results, err = uc.finishPractitionerSearch(ctx, practitioners, request.City, request.Specialty, pageSize)
		if err != nil {
			return nil, err
		}
	}

	return &responses.SearchEnvelope{
		Total:             len(results),
		UpstreamTotal:     bundle.Total,
		Results:           results,
		ContinuationToken: continuationToken(bundle),
	}, nil
}

func (uc *searchUsecase) clampPageSize(count int) int {
	if count <= 0 {
		return constvars.SearchDefaultPageSize
	}
	if count > uc.MaxPageSize {
		return uc.MaxPageSize
	}
	return count
}

// finishPractitionerSearch resolves roles and organizations for the fetched
// practitioners, merges, applies the post-filters and caps to page size.
func (uc *searchUsecase) finishPractitionerSearch(ctx context.Context, practitioners []models.Practitioner, city, specialty string, pageSize int) ([]responses.MergedResult, error) {
	if len(practitioners) == 0 {
		return make([]responses.MergedResult, 0), nil
	}

	ids := make([]string, 0, len(practitioners))
	for _, practitioner := range practitioners {
		ids = append(ids, practitioner.ID)
	}

	roles, organizations, err := uc.Fetcher.FetchRolesFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	results := mergeResults(practitioners, roles, organizations)
	results = filterByCity(results, city)
	results = filterBySpecialty(results, specialty)
	if len(results) > pageSize {
		results = results[:pageSize]
	}
	return results, nil
}

// collectExtraPages follows up to SearchMaxExtraFilterPages continuation
// links of an accepted page, so that post-filters run over more than one
// truncated page. Returns the grown practitioner set and the last bundle,
// whose next link becomes the continuation token.
func (uc *searchUsecase) collectExtraPages(ctx context.Context, bundle *fhir_dto.Bundle, practitioners []models.Practitioner) ([]models.Practitioner, *fhir_dto.Bundle, error) {
	last := bundle
	next := bundle.NextLink()
	for i := 0; i < constvars.SearchMaxExtraFilterPages && next != ""; i++ {
		page, err := uc.AnnuaireClient.SearchByURL(ctx, next)
		if err != nil {
			return nil, nil, err
		}
		more, err := normalizePractitionerEntries(page)
		if err != nil {
			return nil, nil, err
		}
		practitioners = append(practitioners, more...)
		last = page
		next = page.NextLink()
	}
	return practitioners, last, nil
}

func (uc *searchUsecase) logStrategy(ctx context.Context, strategy string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("search strategy selected",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStrategyKey, strategy),
	)
}

func emptyEnvelope(message string) *responses.SearchEnvelope {
	return &responses.SearchEnvelope{
		Total:   0,
		Results: make([]responses.MergedResult, 0),
		Message: message,
	}
}

func continuationToken(bundle *fhir_dto.Bundle) *string {
	next := bundle.NextLink()
	if next == "" {
		return nil
	}
	return &next
}
