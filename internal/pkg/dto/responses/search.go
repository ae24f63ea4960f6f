package responses

// SearchEnvelope wraps one logical search response. It is built once per
// request and never mutated after return.
type SearchEnvelope struct {
	Total             int            `json:"total"`
	UpstreamTotal     *int           `json:"upstream_total,omitempty"`
	Results           []MergedResult `json:"results"`
	Message           string         `json:"message,omitempty"`
	ContinuationToken *string        `json:"continuation_token"`
}

// MergedResult is the public unit of a search response: one practitioner
// with its ordered role list, each role carrying its resolved organization
// when available.
type MergedResult struct {
	ID             string                      `json:"id"`
	FamilyName     string                      `json:"family_name"`
	GivenNames     []string                    `json:"given_names,omitempty"`
	Prefix         string                      `json:"prefix,omitempty"`
	Suffix         string                      `json:"suffix,omitempty"`
	Identifiers    []PractitionerIdentifier    `json:"identifiers,omitempty"`
	Qualifications []PractitionerQualification `json:"qualifications,omitempty"`
	Active         bool                        `json:"active"`
	Roles          []RoleResult                `json:"roles"`
}

type PractitionerIdentifier struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type PractitionerQualification struct {
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
	System  string `json:"system,omitempty"`
}

type RoleResult struct {
	ID           string               `json:"id"`
	Specialties  []string             `json:"specialties,omitempty"`
	Telecoms     []ContactPointResult `json:"telecoms,omitempty"`
	Address      string               `json:"address,omitempty"`
	City         string               `json:"city,omitempty"`
	Active       bool                 `json:"active"`
	Organization *OrganizationResult  `json:"organization,omitempty"`
}

type ContactPointResult struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
}

type OrganizationResult struct {
	ID         string               `json:"id"`
	Name       string               `json:"name,omitempty"`
	Type       string               `json:"type,omitempty"`
	Address    string               `json:"address,omitempty"`
	City       string               `json:"city,omitempty"`
	PostalCode string               `json:"postal_code,omitempty"`
	Telecoms   []ContactPointResult `json:"telecoms,omitempty"`
}
