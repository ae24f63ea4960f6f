package search

import (
	"annuaire-service/internal/pkg/constvars"
	"annuaire-service/internal/pkg/dto/requests"
	"annuaire-service/internal/pkg/exceptions"
	"annuaire-service/internal/pkg/fhir_dto"
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRejectsEmptyCriteria(t *testing.T) {
	client := &fakeAnnuaireClient{}
	uc := newTestUsecase(client)

	_, err := uc.Search(context.Background(), &requests.SearchPractitioners{})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientNoSearchCriteria, customErr.ClientMessage)
	assert.Empty(t, client.calls, "no remote call without criteria")
}

func TestSearchRejectsForeignContinuationToken(t *testing.T) {
	client := &fakeAnnuaireClient{}
	uc := newTestUsecase(client)

	_, err := uc.Search(context.Background(), &requests.SearchPractitioners{
		ContinuationToken: "https://elsewhere.example.org/fhir?page=2",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientInvalidContinuationToken, customErr.ClientMessage)
	assert.Empty(t, client.calls, "a rejected token must never reach the registry")
}

func TestSearchByIdentifier(t *testing.T) {
	t.Run("queries the national namespace exactly once", func(t *testing.T) {
		client := &fakeAnnuaireClient{}
		client.practitionerFn = func(params url.Values) (*fhir_dto.Bundle, error) {
			return bundleOf(1, practitionerResource(t, "prac-1", "Dupont", "Marie")), nil
		}
		uc := newTestUsecase(client)

		envelope, err := uc.Search(context.Background(), &requests.SearchPractitioners{NationalID: "10101010101"})
		require.NoError(t, err)

		practitionerCalls := client.callsTo(constvars.ResourcePractitioner)
		require.Len(t, practitionerCalls, 1)
		assert.Equal(t,
			constvars.FhirSystemRPPS+"|10101010101",
			practitionerCalls[0].params.Get(constvars.FhirParamIdentifier),
		)
		assert.Equal(t, 1, envelope.Total)
	})

	t.Run("a miss yields an empty result set, not an error", func(t *testing.T) {
		client := &fakeAnnuaireClient{}
		uc := newTestUsecase(client)

		envelope, err := uc.Search(context.Background(), &requests.SearchPractitioners{NationalID: "123456789"})
		require.NoError(t, err)

		assert.Equal(t, 0, envelope.Total)
		assert.Empty(t, envelope.Results)
	})

	t.Run("ignores every other search field", func(t *testing.T) {
		client := &fakeAnnuaireClient{}
		client.practitionerFn = func(params url.Values) (*fhir_dto.Bundle, error) {
			return bundleOf(1, practitionerResource(t, "prac-1", "Dupont")), nil
		}
		uc := newTestUsecase(client)

		envelope, err := uc.Search(context.Background(), &requests.SearchPractitioners{
			NationalID: "10101010101",
			Name:       "Martin",
			City:       "Nulle-Part",
			Specialty:  "Astrologie",
		})
		require.NoError(t, err)

		practitionerCalls := client.callsTo(constvars.ResourcePractitioner)
		require.Len(t, practitionerCalls, 1)
		assert.Empty(t, practitionerCalls[0].params.Get(constvars.FhirParamFamily))
		assert.Equal(t, 1, envelope.Total, "city and specialty are not applied as post-filters here")
	})
}

func TestSearchPrecedence(t *testing.T) {
	t.Run("identifier beats qualification, name and city", func(t *testing.T) {
		client := &fakeAnnuaireClient{}
		uc := newTestUsecase(client)

		_, err := uc.Search(context.Background(), &requests.SearchPractitioners{
			NationalID:    "10101010101",
			SpecialtyCode: "SM54",
			Name:          "Dupont",
			City:          "Lyon",
		})
		require.NoError(t, err)

		require.NotEmpty(t, client.calls)
		assert.NotEmpty(t, client.calls[0].params.Get(constvars.FhirParamIdentifier))
	})

	t.Run("qualification code beats name", func(t *testing.T) {
		client := &fakeAnnuaireClient{}
		uc := newTestUsecase(client)

		_, err := uc.Search(context.Background(), &requests.SearchPractitioners{
			SpecialtyCode: "SM54",
			Name:          "Dupont",
		})
		require.NoError(t, err)

		require.NotEmpty(t, client.calls)
		for _, call := range client.callsTo(constvars.ResourcePractitioner) {
			assert.Equal(t, "SM54", call.params.Get(constvars.FhirParamQualification))
		}
	})

	t.Run("continuation token beats everything", func(t *testing.T) {
		client := &fakeAnnuaireClient{}
		uc := newTestUsecase(client)

		_, err := uc.Search(context.Background(), &requests.SearchPractitioners{
			ContinuationToken: "https://registry.example.org/fhir?page=2",
			NationalID:        "10101010101",
		})
		require.NoError(t, err)

		require.NotEmpty(t, client.calls)
		assert.Equal(t, "Bundle", client.calls[0].resource)
	})
}

func TestResume(t *testing.T) {
	token := "https://registry.example.org/fhir?page=2"

	t.Run("replays the token verbatim", func(t *testing.T) {
		client := &fakeAnnuaireClient{}
		client.urlFn = func(rawURL string) (*fhir_dto.Bundle, error) {
			assert.Equal(t, token, rawURL)
			return bundleOf(5, practitionerResource(t, "prac-4", "Durand")), nil
		}
		uc := newTestUsecase(client)

		envelope, err := uc.Search(context.Background(), &requests.SearchPractitioners{ContinuationToken: token})
		require.NoError(t, err)

		assert.Equal(t, 1, envelope.Total)
		assert.Nil(t, envelope.ContinuationToken)
	})

	t.Run("a role page resumes on the role path", func(t *testing.T) {
		nextURL := "https://registry.example.org/fhir?page=3"
		client := &fakeAnnuaireClient{}
		client.urlFn = func(rawURL string) (*fhir_dto.Bundle, error) {
			return withNextLink(bundleOf(30,
				roleResource(t, "role-7", "prac-7", "", "Cardiologie"),
				practitionerResource(t, "prac-7", "Petit"),
			), nextURL), nil
		}
		uc := newTestUsecase(client)

		envelope, err := uc.Search(context.Background(), &requests.SearchPractitioners{ContinuationToken: token})
		require.NoError(t, err)

		require.Equal(t, 1, envelope.Total)
		assert.Equal(t, "prac-7", envelope.Results[0].ID)
		require.NotNil(t, envelope.ContinuationToken)
		assert.Equal(t, nextURL, *envelope.ContinuationToken)
		assert.Empty(t, client.callsTo(constvars.ResourcePractitionerRole), "embedded roles are not re-fetched")
	})
}

func TestClampPageSize(t *testing.T) {
	uc := newTestUsecase(&fakeAnnuaireClient{})

	assert.Equal(t, constvars.SearchDefaultPageSize, uc.clampPageSize(0))
	assert.Equal(t, constvars.SearchDefaultPageSize, uc.clampPageSize(-3))
	assert.Equal(t, 25, uc.clampPageSize(25))
	assert.Equal(t, uc.MaxPageSize, uc.clampPageSize(9999))
}
