package search

import (
	"annuaire-service/internal/pkg/constvars"
	"annuaire-service/internal/pkg/fhir_dto"
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFetcher(client *fakeAnnuaireClient, batchSize, maxBatches int) *batchFetcher {
	return &batchFetcher{
		client:     client,
		log:        zap.NewNop(),
		batchSize:  batchSize,
		maxBatches: maxBatches,
	}
}

func makeIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("prac-%03d", i))
	}
	return ids
}

func TestFetchRolesForBatching(t *testing.T) {
	t.Run("issues minimum number of batches, each within size", func(t *testing.T) {
		client := &fakeAnnuaireClient{}
		fetcher := newTestFetcher(client, 20, 5)

		_, _, err := fetcher.FetchRolesFor(context.Background(), makeIDs(45))
		require.NoError(t, err)

		roleCalls := client.callsTo(constvars.ResourcePractitionerRole)
		require.Len(t, roleCalls, 3, "45 ids at batch size 20 should take 3 batches")

		seen := make(map[string]struct{})
		for _, call := range roleCalls {
			references := strings.Split(call.params.Get(constvars.FhirParamPractitioner), ",")
			assert.LessOrEqual(t, len(references), 20)
			for _, reference := range references {
				assert.True(t, strings.HasPrefix(reference, constvars.ResourcePractitioner+"/"))
				seen[reference] = struct{}{}
			}
			assert.ElementsMatch(t,
				[]string{constvars.FhirIncludeRoleOrganization, constvars.FhirIncludeRoleLocation},
				call.params[constvars.FhirParamInclude],
			)
		}
		assert.Len(t, seen, 45, "every id should be covered exactly once")
	})

	t.Run("stops at the batch ceiling", func(t *testing.T) {
		client := &fakeAnnuaireClient{}
		fetcher := newTestFetcher(client, 20, 5)

		_, _, err := fetcher.FetchRolesFor(context.Background(), makeIDs(120))
		require.NoError(t, err)

		assert.Len(t, client.callsTo(constvars.ResourcePractitionerRole), 5)
	})

	t.Run("deduplicates input ids before chunking", func(t *testing.T) {
		client := &fakeAnnuaireClient{}
		fetcher := newTestFetcher(client, 20, 5)

		ids := append(makeIDs(10), makeIDs(10)...)
		_, _, err := fetcher.FetchRolesFor(context.Background(), ids)
		require.NoError(t, err)

		roleCalls := client.callsTo(constvars.ResourcePractitionerRole)
		require.Len(t, roleCalls, 1)
		references := strings.Split(roleCalls[0].params.Get(constvars.FhirParamPractitioner), ",")
		assert.Len(t, references, 10)
	})

	t.Run("deduplicates roles and organizations across batches", func(t *testing.T) {
		client := &fakeAnnuaireClient{}
		client.roleFn = func(url.Values) (*fhir_dto.Bundle, error) {
			return bundleOf(2,
				roleResource(t, "role-1", "prac-000", "org-1", "Cardiologie"),
				organizationResource(t, "org-1", "Clinique du Parc", "Lyon"),
			), nil
		}
		fetcher := newTestFetcher(client, 2, 5)

		roles, organizations, err := fetcher.FetchRolesFor(context.Background(), makeIDs(6))
		require.NoError(t, err)

		assert.Len(t, client.callsTo(constvars.ResourcePractitionerRole), 3)
		assert.Len(t, roles, 1, "same role returned by every batch should appear once")
		assert.Len(t, organizations, 1)
	})
}

func TestFetchPractitionersByIDs(t *testing.T) {
	t.Run("passes the qualification constraint on every batch", func(t *testing.T) {
		client := &fakeAnnuaireClient{}
		fetcher := newTestFetcher(client, 3, 5)

		_, err := fetcher.FetchPractitionersByIDs(context.Background(), makeIDs(7), "SM54")
		require.NoError(t, err)

		practitionerCalls := client.callsTo(constvars.ResourcePractitioner)
		require.Len(t, practitionerCalls, 3)
		for _, call := range practitionerCalls {
			assert.Equal(t, "SM54", call.params.Get(constvars.FhirParamQualification))
			assert.NotEmpty(t, call.params.Get(constvars.FhirParamID))
		}
	})

	t.Run("keeps only practitioners the registry yields", func(t *testing.T) {
		client := &fakeAnnuaireClient{}
		client.practitionerFn = func(params url.Values) (*fhir_dto.Bundle, error) {
			if strings.Contains(params.Get(constvars.FhirParamID), "prac-000") {
				return bundleOf(1, practitionerResource(t, "prac-000", "Dupont")), nil
			}
			return emptyBundle(), nil
		}
		fetcher := newTestFetcher(client, 2, 5)

		practitioners, err := fetcher.FetchPractitionersByIDs(context.Background(), makeIDs(4), "SM54")
		require.NoError(t, err)

		require.Len(t, practitioners, 1)
		assert.Equal(t, "prac-000", practitioners[0].ID)
	})
}

func TestChunkStrings(t *testing.T) {
	assert.Nil(t, chunkStrings(nil, 3))
	assert.Nil(t, chunkStrings([]string{"a"}, 0))

	chunks := chunkStrings([]string{"a", "b", "c", "d", "e"}, 2)
	require.Len(t, chunks, 3)
	assert.Equal(t, []string{"a", "b"}, chunks[0])
	assert.Equal(t, []string{"e"}, chunks[2])
}

func TestDedupeStrings(t *testing.T) {
	deduped := dedupeStrings([]string{"a", "", "b", "a", "b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, deduped)
}
