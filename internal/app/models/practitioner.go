package models

type IdentifierKind string

const (
	IdentifierKindRPPS  IdentifierKind = "rpps"
	IdentifierKindADELI IdentifierKind = "adeli"
	IdentifierKindOther IdentifierKind = "other"
)

type NationalIdentifier struct {
	Kind  IdentifierKind
	Value string
}

type Qualification struct {
	Code    string
	Display string
	System  string
}

// Practitioner is the flat record built once per fetched registry resource.
// It is immutable after normalization.
type Practitioner struct {
	ID             string
	Identifiers    []NationalIdentifier
	FamilyName     string
	GivenNames     []string
	Prefix         string
	Suffix         string
	Qualifications []Qualification
	Active         bool
}
