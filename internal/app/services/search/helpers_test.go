package search

import (
	"annuaire-service/internal/pkg/fhir_dto"
	"context"
	"encoding/json"
	"net/url"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCall struct {
	resource string
	params   url.Values
	rawURL   string
}

// fakeAnnuaireClient records every outbound call and delegates to per-resource
// function fields. A nil field answers with an empty bundle.
type fakeAnnuaireClient struct {
	practitionerFn func(params url.Values) (*fhir_dto.Bundle, error)
	roleFn         func(params url.Values) (*fhir_dto.Bundle, error)
	organizationFn func(params url.Values) (*fhir_dto.Bundle, error)
	urlFn          func(rawURL string) (*fhir_dto.Bundle, error)

	calls []fakeCall
}

func (f *fakeAnnuaireClient) SearchPractitioners(_ context.Context, params url.Values) (*fhir_dto.Bundle, error) {
	f.calls = append(f.calls, fakeCall{resource: "Practitioner", params: params})
	if f.practitionerFn == nil {
		return emptyBundle(), nil
	}
	return f.practitionerFn(params)
}

func (f *fakeAnnuaireClient) SearchPractitionerRoles(_ context.Context, params url.Values) (*fhir_dto.Bundle, error) {
	f.calls = append(f.calls, fakeCall{resource: "PractitionerRole", params: params})
	if f.roleFn == nil {
		return emptyBundle(), nil
	}
	return f.roleFn(params)
}

func (f *fakeAnnuaireClient) SearchOrganizations(_ context.Context, params url.Values) (*fhir_dto.Bundle, error) {
	f.calls = append(f.calls, fakeCall{resource: "Organization", params: params})
	if f.organizationFn == nil {
		return emptyBundle(), nil
	}
	return f.organizationFn(params)
}

func (f *fakeAnnuaireClient) SearchByURL(_ context.Context, rawURL string) (*fhir_dto.Bundle, error) {
	f.calls = append(f.calls, fakeCall{resource: "Bundle", rawURL: rawURL})
	if f.urlFn == nil {
		return emptyBundle(), nil
	}
	return f.urlFn(rawURL)
}

func (f *fakeAnnuaireClient) callsTo(resource string) []fakeCall {
	var filtered []fakeCall
	for _, call := range f.calls {
		if call.resource == resource {
			filtered = append(filtered, call)
		}
	}
	return filtered
}

func newTestUsecase(client *fakeAnnuaireClient) *searchUsecase {
	return &searchUsecase{
		AnnuaireClient: client,
		Fetcher:        newBatchFetcher(client, zap.NewNop()),
		Log:            zap.NewNop(),
		BaseUrl:        "https://registry.example.org/fhir",
		MaxPageSize:    50,
	}
}

func mustMarshal(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	raw, err := gojson.Marshal(v)
	require.NoError(t, err)
	return raw
}

func emptyBundle() *fhir_dto.Bundle {
	total := 0
	return &fhir_dto.Bundle{ResourceType: "Bundle", Type: "searchset", Total: &total}
}

func bundleOf(total int, resources ...json.RawMessage) *fhir_dto.Bundle {
	bundle := &fhir_dto.Bundle{ResourceType: "Bundle", Type: "searchset", Total: &total}
	for _, resource := range resources {
		bundle.Entry = append(bundle.Entry, fhir_dto.BundleEntry{Resource: resource})
	}
	return bundle
}

func withNextLink(bundle *fhir_dto.Bundle, nextURL string) *fhir_dto.Bundle {
	bundle.Link = append(bundle.Link, fhir_dto.BundleLink{Relation: "next", URL: nextURL})
	return bundle
}

func practitionerResource(t *testing.T, id, family string, given ...string) json.RawMessage {
	t.Helper()
	return mustMarshal(t, fhir_dto.Practitioner{
		ResourceType: "Practitioner",
		ID:           id,
		Active:       true,
		Name:         []fhir_dto.HumanName{{Family: family, Given: given}},
	})
}

func practitionerWithQualification(t *testing.T, id, family, code, display string) json.RawMessage {
	t.Helper()
	return mustMarshal(t, fhir_dto.Practitioner{
		ResourceType: "Practitioner",
		ID:           id,
		Active:       true,
		Name:         []fhir_dto.HumanName{{Family: family}},
		Qualification: []fhir_dto.Qualification{{
			Code: fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{{Code: code, Display: display}},
			},
		}},
	})
}

func roleResource(t *testing.T, id, practitionerID, organizationID string, specialties ...string) json.RawMessage {
	t.Helper()
	role := fhir_dto.PractitionerRole{
		ResourceType: "PractitionerRole",
		ID:           id,
		Active:       true,
	}
	if practitionerID != "" {
		role.Practitioner = fhir_dto.Reference{Reference: "Practitioner/" + practitionerID}
	}
	if organizationID != "" {
		role.Organization = fhir_dto.Reference{Reference: "Organization/" + organizationID}
	}
	for _, specialty := range specialties {
		role.Specialty = append(role.Specialty, fhir_dto.CodeableConcept{Text: specialty})
	}
	return mustMarshal(t, role)
}

func roleResourceAtLocation(t *testing.T, id, practitionerID, locationID string, specialties ...string) json.RawMessage {
	t.Helper()
	role := fhir_dto.PractitionerRole{
		ResourceType: "PractitionerRole",
		ID:           id,
		Active:       true,
		Location:     []fhir_dto.Reference{{Reference: "Location/" + locationID}},
	}
	if practitionerID != "" {
		role.Practitioner = fhir_dto.Reference{Reference: "Practitioner/" + practitionerID}
	}
	for _, specialty := range specialties {
		role.Specialty = append(role.Specialty, fhir_dto.CodeableConcept{Text: specialty})
	}
	return mustMarshal(t, role)
}

func locationResource(t *testing.T, id, name, city string) json.RawMessage {
	t.Helper()
	return mustMarshal(t, fhir_dto.Location{
		ResourceType: "Location",
		ID:           id,
		Name:         name,
		Address:      fhir_dto.Address{City: city},
	})
}

func organizationResource(t *testing.T, id, name, city string) json.RawMessage {
	t.Helper()
	return mustMarshal(t, fhir_dto.Organization{
		ResourceType: "Organization",
		ID:           id,
		Active:       true,
		Name:         name,
		Address:      []fhir_dto.Address{{City: city}},
	})
}
