package fhir_dto

import (
	"annuaire-service/internal/pkg/constvars"
	"encoding/json"
)

type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Type         string        `json:"type,omitempty"`
	Total        *int          `json:"total,omitempty"`
	Link         []BundleLink  `json:"link,omitempty"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

type BundleLink struct {
	Relation string `json:"relation"`
	URL      string `json:"url"`
}

type BundleEntry struct {
	FullURL  string            `json:"fullUrl,omitempty"`
	Resource json.RawMessage   `json:"resource"`
	Search   BundleEntrySearch `json:"search,omitempty"`
}

type BundleEntrySearch struct {
	Mode string `json:"mode,omitempty"`
}

// ResourceHeader is used to sniff the kind of a raw bundle entry before
// decoding it into its concrete type.
type ResourceHeader struct {
	ResourceType string `json:"resourceType"`
	ID           string `json:"id"`
}

// NextLink returns the URL of the bundle's "next" relation, or "" when the
// result set has no further page.
func (b *Bundle) NextLink() string {
	if b == nil {
		return ""
	}
	for _, link := range b.Link {
		if link.Relation == constvars.FhirLinkRelationNext {
			return link.URL
		}
	}
	return ""
}
