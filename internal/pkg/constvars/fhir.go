package constvars

const (
	ResourcePractitioner     = "Practitioner"
	ResourcePractitionerRole = "PractitionerRole"
	ResourceOrganization     = "Organization"
	ResourceLocation         = "Location"
	ResourceBundle           = "Bundle"
)

// Search parameter names understood by the registry API.
const (
	FhirParamFamily        = "family"
	FhirParamGiven         = "given"
	FhirParamName          = "name"
	FhirParamIdentifier    = "identifier"
	FhirParamQualification = "qualification"
	FhirParamAddressCity   = "address-city"
	FhirParamOrganization  = "organization"
	FhirParamPractitioner  = "practitioner"
	FhirParamID            = "_id"
	FhirParamCount         = "_count"
	FhirParamInclude       = "_include"
)

const (
	FhirIncludeRoleOrganization = "PractitionerRole:organization"
	FhirIncludeRolePractitioner = "PractitionerRole:practitioner"
	FhirIncludeRoleLocation     = "PractitionerRole:location"

	// Chained parameter filtering roles through their organization's city.
	FhirParamRoleOrganizationCity = "organization.address-city"
)

// Identifier namespaces issued by the national registry.
const (
	FhirSystemRPPS  = "urn:oid:1.2.250.1.71.4.2.1"
	FhirSystemADELI = "urn:oid:1.2.250.1.71.4.2.2"

	FhirIdentifierTypeRPPS  = "RPPS"
	FhirIdentifierTypeADELI = "ADELI"
)

const (
	FhirLinkRelationNext = "next"
)
