package search

import (
	"annuaire-service/internal/app/contracts"
	"annuaire-service/internal/app/models"
	"annuaire-service/internal/pkg/constvars"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// batchFetcher issues the minimum number of batched queries needed to cover
// a set of entity identifiers, each query carrying at most batchSize
// identifiers, capped at maxBatches per phase. Identifiers beyond the
// ceiling are silently skipped: a documented partial-coverage policy, not an
// error.
type batchFetcher struct {
	client     contracts.AnnuaireClient
	log        *zap.Logger
	batchSize  int
	maxBatches int
}

func newBatchFetcher(client contracts.AnnuaireClient, log *zap.Logger) *batchFetcher {
	return &batchFetcher{
		client:     client,
		log:        log,
		batchSize:  constvars.SearchBatchSize,
		maxBatches: constvars.SearchMaxBatchCount,
	}
}

// FetchRolesFor returns the roles referencing any of the given practitioner
// ids, with their organizations embedded in the same responses. Roles and
// organizations are deduplicated by id, last seen wins, so the assembled
// sets are identical regardless of batch completion order.
func (f *batchFetcher) FetchRolesFor(ctx context.Context, practitionerIDs []string) ([]models.Role, []models.Organization, error) {
	return f.fetchRoles(ctx, practitionerIDs, constvars.FhirParamPractitioner, constvars.ResourcePractitioner)
}

// FetchRolesForOrganizations returns the roles referencing any of the given
// organization ids, same mechanics as FetchRolesFor.
func (f *batchFetcher) FetchRolesForOrganizations(ctx context.Context, organizationIDs []string) ([]models.Role, []models.Organization, error) {
	return f.fetchRoles(ctx, organizationIDs, constvars.FhirParamOrganization, constvars.ResourceOrganization)
}

func (f *batchFetcher) fetchRoles(ctx context.Context, ids []string, referenceParam, referencedType string) ([]models.Role, []models.Organization, error) {
	rolesByID := make(map[string]models.Role)
	var roleOrder []string
	organizationsByID := make(map[string]models.Organization)
	var organizationOrder []string

	chunks := chunkStrings(dedupeStrings(ids), f.batchSize)
	for batchIndex, chunk := range chunks {
		if batchIndex >= f.maxBatches {
			f.log.Debug("batch ceiling reached, remaining identifiers skipped",
				zap.Int("batches_issued", f.maxBatches),
				zap.Int("batches_total", len(chunks)),
			)
			break
		}

		references := make([]string, 0, len(chunk))
		for _, id := range chunk {
			references = append(references, fmt.Sprintf("%s/%s", referencedType, id))
		}

		params := url.Values{}
		params.Set(referenceParam, strings.Join(references, ","))
		params.Add(constvars.FhirParamInclude, constvars.FhirIncludeRoleOrganization)
		params.Add(constvars.FhirParamInclude, constvars.FhirIncludeRoleLocation)
		params.Set(constvars.FhirParamCount, strconv.Itoa(constvars.SearchRolePageSize))

		bundle, err := f.client.SearchPractitionerRoles(ctx, params)
		if err != nil {
			return nil, nil, err
		}

		_, roles, organizations, err := splitBundle(bundle)
		if err != nil {
			return nil, nil, err
		}

		for _, role := range roles {
			if _, seen := rolesByID[role.ID]; !seen {
				roleOrder = append(roleOrder, role.ID)
			}
			rolesByID[role.ID] = role
		}
		for _, organization := range organizations {
			if _, seen := organizationsByID[organization.ID]; !seen {
				organizationOrder = append(organizationOrder, organization.ID)
			}
			organizationsByID[organization.ID] = organization
		}
	}

	roles := make([]models.Role, 0, len(roleOrder))
	for _, id := range roleOrder {
		roles = append(roles, rolesByID[id])
	}
	organizations := make([]models.Organization, 0, len(organizationOrder))
	for _, id := range organizationOrder {
		organizations = append(organizations, organizationsByID[id])
	}
	return roles, organizations, nil
}

// FetchPractitionersByIDs returns the practitioner records among ids that
// the registry yields, optionally constrained by a qualification code.
// Identifiers not present in the constrained responses are excluded.
func (f *batchFetcher) FetchPractitionersByIDs(ctx context.Context, ids []string, qualificationCode string) ([]models.Practitioner, error) {
	practitionersByID := make(map[string]models.Practitioner)
	var order []string

	chunks := chunkStrings(dedupeStrings(ids), f.batchSize)
	for batchIndex, chunk := range chunks {
		if batchIndex >= f.maxBatches {
			break
		}

		params := url.Values{}
		params.Set(constvars.FhirParamID, strings.Join(chunk, ","))
		if qualificationCode != "" {
			params.Set(constvars.FhirParamQualification, qualificationCode)
		}
		params.Set(constvars.FhirParamCount, strconv.Itoa(f.batchSize))

		bundle, err := f.client.SearchPractitioners(ctx, params)
		if err != nil {
			return nil, err
		}

		practitioners, _, _, err := splitBundle(bundle)
		if err != nil {
			return nil, err
		}

		for _, practitioner := range practitioners {
			if _, seen := practitionersByID[practitioner.ID]; !seen {
				order = append(order, practitioner.ID)
			}
			practitionersByID[practitioner.ID] = practitioner
		}
	}

	practitioners := make([]models.Practitioner, 0, len(order))
	for _, id := range order {
		practitioners = append(practitioners, practitionersByID[id])
	}
	return practitioners, nil
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	deduped := make([]string, 0, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		if _, duplicate := seen[value]; duplicate {
			continue
		}
		seen[value] = struct{}{}
		deduped = append(deduped, value)
	}
	return deduped
}

func chunkStrings(values []string, size int) [][]string {
	if size <= 0 || len(values) == 0 {
		return nil
	}
	chunks := make([][]string, 0, (len(values)+size-1)/size)
	for start := 0; start < len(values); start += size {
		end := start + size
		if end > len(values) {
			end = len(values)
		}
		chunks = append(chunks, values[start:end])
	}
	return chunks
}
