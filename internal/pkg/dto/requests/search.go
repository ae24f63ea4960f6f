package requests

// SearchPractitioners carries the inbound query surface of the search
// endpoint. All fields are optional; the router enforces that at least one
// identifying field is present.
type SearchPractitioners struct {
	Name              string `json:"name" validate:"omitempty,max=120"`
	City              string `json:"city" validate:"omitempty,max=80"`
	Specialty         string `json:"specialty" validate:"omitempty,max=80"`
	SpecialtyCode     string `json:"specialty_code" validate:"omitempty,max=40"`
	NationalID        string `json:"national_id" validate:"omitempty,national_id"`
	Count             int    `json:"count" validate:"omitempty,min=0"`
	ContinuationToken string `json:"continuation_token"`
}

// HasPostFilters reports whether city or specialty must be applied over the
// merged results after the upstream fetch.
func (r *SearchPractitioners) HasPostFilters() bool {
	return r.City != "" || r.Specialty != ""
}
