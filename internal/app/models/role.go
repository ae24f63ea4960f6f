package models

type ContactPoint struct {
	System string
	Value  string
}

// Role is one practitioner's assignment at one organization. The resolved
// Organization is attached exactly once by the merge step; everything else
// is immutable after normalization.
type Role struct {
	ID             string
	PractitionerID string
	OrganizationID string
	LocationIDs    []string
	Specialties    []string
	Telecoms       []ContactPoint
	Address        string
	City           string
	Active         bool
	Organization   *Organization
}
