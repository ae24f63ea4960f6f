package contracts

import (
	"annuaire-service/internal/pkg/fhir_dto"
	"context"
	"net/url"
)

// AnnuaireClient is the abstract contract of the remote registry: a
// resource-oriented search API returning paged bundles with entry lists,
// totals and continuation links. The core depends only on this contract.
type AnnuaireClient interface {
	SearchPractitioners(ctx context.Context, params url.Values) (*fhir_dto.Bundle, error)
	SearchPractitionerRoles(ctx context.Context, params url.Values) (*fhir_dto.Bundle, error)
	SearchOrganizations(ctx context.Context, params url.Values) (*fhir_dto.Bundle, error)

	// SearchByURL replays a previously returned continuation link verbatim.
	SearchByURL(ctx context.Context, rawURL string) (*fhir_dto.Bundle, error)
}
