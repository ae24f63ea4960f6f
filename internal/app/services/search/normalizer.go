package search

import (
	"annuaire-service/internal/app/models"
	"annuaire-service/internal/pkg/constvars"
	"annuaire-service/internal/pkg/exceptions"
	"annuaire-service/internal/pkg/fhir_dto"
	"annuaire-service/internal/pkg/utils"
	"strings"

	"github.com/goccy/go-json"
)

// normalizePractitioner maps one raw registry practitioner into its flat
// record. Pure function, no I/O.
func normalizePractitioner(resource *fhir_dto.Practitioner) models.Practitioner {
	practitioner := models.Practitioner{
		ID:     resource.ID,
		Active: resource.Active,
	}

	for _, identifier := range resource.Identifier {
		practitioner.Identifiers = append(practitioner.Identifiers, models.NationalIdentifier{
			Kind:  identifierKind(identifier),
			Value: identifier.Value,
		})
	}

	if len(resource.Name) > 0 {
		name := resource.Name[0]
		practitioner.FamilyName = name.Family
		practitioner.GivenNames = append([]string(nil), name.Given...)
		practitioner.Prefix = strings.Join(name.Prefix, " ")
		practitioner.Suffix = strings.Join(name.Suffix, " ")
	}

	for _, qualification := range resource.Qualification {
		normalized := models.Qualification{Display: qualification.Code.Text}
		if len(qualification.Code.Coding) > 0 {
			coding := qualification.Code.Coding[0]
			normalized.Code = coding.Code
			normalized.System = coding.System
			if normalized.Display == "" {
				normalized.Display = coding.Display
			}
		}
		practitioner.Qualifications = append(practitioner.Qualifications, normalized)
	}

	return practitioner
}

func identifierKind(identifier fhir_dto.Identifier) models.IdentifierKind {
	for _, coding := range identifier.Type.Coding {
		switch coding.Code {
		case constvars.FhirIdentifierTypeRPPS:
			return models.IdentifierKindRPPS
		case constvars.FhirIdentifierTypeADELI:
			return models.IdentifierKindADELI
		}
	}
	switch identifier.System {
	case constvars.FhirSystemRPPS:
		return models.IdentifierKindRPPS
	case constvars.FhirSystemADELI:
		return models.IdentifierKindADELI
	}
	return models.IdentifierKindOther
}

// normalizeRole maps one raw role record. Practitioner and organization
// references go through the typed reference parser: a malformed reference is
// a distinct error, never a silently empty id.
func normalizeRole(resource *fhir_dto.PractitionerRole) (models.Role, error) {
	role := models.Role{
		ID:     resource.ID,
		Active: resource.Active,
	}

	if resource.Practitioner.Reference != "" {
		practitionerID, err := utils.ParseReference(resource.Practitioner.Reference, constvars.ResourcePractitioner)
		if err != nil {
			return models.Role{}, err
		}
		role.PractitionerID = practitionerID
	}

	if resource.Organization.Reference != "" {
		organizationID, err := utils.ParseReference(resource.Organization.Reference, constvars.ResourceOrganization)
		if err != nil {
			return models.Role{}, err
		}
		role.OrganizationID = organizationID
	}

	for _, specialty := range resource.Specialty {
		if specialty.Text != "" {
			role.Specialties = append(role.Specialties, specialty.Text)
			continue
		}
		for _, coding := range specialty.Coding {
			if coding.Display != "" {
				role.Specialties = append(role.Specialties, coding.Display)
			}
		}
	}

	for _, telecom := range resource.Telecom {
		role.Telecoms = append(role.Telecoms, models.ContactPoint{System: telecom.System, Value: telecom.Value})
	}

	if len(resource.Location) > 0 {
		displays := make([]string, 0, len(resource.Location))
		for _, location := range resource.Location {
			if location.Reference != "" {
				locationID, err := utils.ParseReference(location.Reference, constvars.ResourceLocation)
				if err != nil {
					return models.Role{}, err
				}
				role.LocationIDs = append(role.LocationIDs, locationID)
			}
			if location.Display != "" {
				displays = append(displays, location.Display)
			}
		}
		role.Address = strings.Join(displays, ", ")
	}

	return role, nil
}

func normalizeLocation(resource *fhir_dto.Location) models.Location {
	return models.Location{
		ID:      resource.ID,
		Name:    resource.Name,
		City:    resource.Address.City,
		Address: formatAddress(resource.Address),
	}
}

// attachLocations fills each role's city and address from the locations
// included in the same bundle. The first referenced location with a city
// wins; a location address replaces the weaker display-derived one.
func attachLocations(roles []models.Role, locations []models.Location) {
	if len(locations) == 0 {
		return
	}
	byID := make(map[string]models.Location, len(locations))
	for _, location := range locations {
		byID[location.ID] = location
	}

	for i := range roles {
		addressResolved := false
		for _, locationID := range roles[i].LocationIDs {
			location, ok := byID[locationID]
			if !ok {
				continue
			}
			if roles[i].City == "" && location.City != "" {
				roles[i].City = location.City
			}
			if !addressResolved && location.Address != "" {
				roles[i].Address = location.Address
				addressResolved = true
			}
		}
	}
}

func normalizeOrganization(resource *fhir_dto.Organization) models.Organization {
	organization := models.Organization{
		ID:   resource.ID,
		Name: resource.Name,
	}

	if len(resource.Type) > 0 {
		organization.Type = resource.Type[0].Text
		if organization.Type == "" && len(resource.Type[0].Coding) > 0 {
			organization.Type = resource.Type[0].Coding[0].Display
		}
	}

	if len(resource.Address) > 0 {
		address := resource.Address[0]
		organization.City = address.City
		organization.PostalCode = address.PostalCode
		organization.Address = formatAddress(address)
	}

	for _, telecom := range resource.Telecom {
		organization.Telecoms = append(organization.Telecoms, models.ContactPoint{System: telecom.System, Value: telecom.Value})
	}

	return organization
}

func formatAddress(address fhir_dto.Address) string {
	if address.Text != "" {
		return address.Text
	}
	parts := append([]string(nil), address.Line...)
	locality := strings.TrimSpace(address.PostalCode + " " + address.City)
	if locality != "" {
		parts = append(parts, locality)
	}
	return strings.Join(parts, ", ")
}

// splitBundle normalizes every entry of a possibly mixed bundle, tagged by
// resource kind. Included locations are resolved onto their roles here, so
// callers see roles with city and address already filled. Unknown kinds are
// skipped.
func splitBundle(bundle *fhir_dto.Bundle) ([]models.Practitioner, []models.Role, []models.Organization, error) {
	if bundle == nil {
		return nil, nil, nil, nil
	}

	var practitioners []models.Practitioner
	var roles []models.Role
	var organizations []models.Organization
	var locations []models.Location

	for _, entry := range bundle.Entry {
		var header fhir_dto.ResourceHeader
		if err := json.Unmarshal(entry.Resource, &header); err != nil {
			return nil, nil, nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBundle)
		}

		switch header.ResourceType {
		case constvars.ResourcePractitioner:
			var resource fhir_dto.Practitioner
			if err := json.Unmarshal(entry.Resource, &resource); err != nil {
				return nil, nil, nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePractitioner)
			}
			practitioners = append(practitioners, normalizePractitioner(&resource))
		case constvars.ResourcePractitionerRole:
			var resource fhir_dto.PractitionerRole
			if err := json.Unmarshal(entry.Resource, &resource); err != nil {
				return nil, nil, nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePractitionerRole)
			}
			role, err := normalizeRole(&resource)
			if err != nil {
				return nil, nil, nil, err
			}
			roles = append(roles, role)
		case constvars.ResourceOrganization:
			var resource fhir_dto.Organization
			if err := json.Unmarshal(entry.Resource, &resource); err != nil {
				return nil, nil, nil, exceptions.ErrDecodeResponse(err, constvars.ResourceOrganization)
			}
			organizations = append(organizations, normalizeOrganization(&resource))
		case constvars.ResourceLocation:
			var resource fhir_dto.Location
			if err := json.Unmarshal(entry.Resource, &resource); err != nil {
				return nil, nil, nil, exceptions.ErrDecodeResponse(err, constvars.ResourceLocation)
			}
			locations = append(locations, normalizeLocation(&resource))
		}
	}

	attachLocations(roles, locations)
	return practitioners, roles, organizations, nil
}

func normalizePractitionerEntries(bundle *fhir_dto.Bundle) ([]models.Practitioner, error) {
	practitioners, _, _, err := splitBundle(bundle)
	return practitioners, err
}
