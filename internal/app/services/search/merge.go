package search

import (
	"annuaire-service/internal/app/models"
	"annuaire-service/internal/pkg/dto/responses"
	"sort"
)

// attachOrganizations resolves each role's organization reference against
// the fetched organizations, attaching the resolved record exactly once.
// The fetched originals are not mutated.
func attachOrganizations(roles []models.Role, organizations []models.Organization) []models.Role {
	byID := make(map[string]models.Organization, len(organizations))
	for _, organization := range organizations {
		byID[organization.ID] = organization
	}

	attached := make([]models.Role, len(roles))
	copy(attached, roles)
	for i := range attached {
		if attached[i].Organization != nil || attached[i].OrganizationID == "" {
			continue
		}
		if organization, ok := byID[attached[i].OrganizationID]; ok {
			resolved := organization
			attached[i].Organization = &resolved
		}
	}
	return attached
}

// groupRolesByPractitioner groups roles by practitioner reference, dropping
// duplicate role ids. A role without a practitioner reference forms its own
// group under a synthetic key so it is never silently lost. Each group is
// ordered canonically by role id, so merged output does not depend on the
// order roles were fetched in.
func groupRolesByPractitioner(roles []models.Role) (map[string][]models.Role, []string) {
	groups := make(map[string][]models.Role)
	var order []string
	seenRoles := make(map[string]struct{})

	for _, role := range roles {
		if _, duplicate := seenRoles[role.ID]; duplicate {
			continue
		}
		seenRoles[role.ID] = struct{}{}

		key := role.PractitionerID
		if key == "" {
			key = "role:" + role.ID
		}
		if _, exists := groups[key]; !exists {
			order = append(order, key)
		}
		groups[key] = append(groups[key], role)
	}

	for key := range groups {
		group := groups[key]
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
	}
	return groups, order
}

// mergeResults left-joins practitioners with their role groups:
// practitioners are never dropped for lacking roles.
func mergeResults(practitioners []models.Practitioner, roles []models.Role, organizations []models.Organization) []responses.MergedResult {
	attached := attachOrganizations(roles, organizations)
	groups, _ := groupRolesByPractitioner(attached)

	results := make([]responses.MergedResult, 0, len(practitioners))
	seen := make(map[string]struct{}, len(practitioners))
	for _, practitioner := range practitioners {
		if _, duplicate := seen[practitioner.ID]; duplicate {
			continue
		}
		seen[practitioner.ID] = struct{}{}
		results = append(results, buildMergedResult(practitioner, groups[practitioner.ID]))
	}
	return results
}

// mergeResultsFromRoles right-joins from the role side: the grouping key set
// is derived from roles, and a practitioner id referenced by a role but
// absent from the embedded records yields a result with empty name fields
// rather than being dropped.
func mergeResultsFromRoles(roles []models.Role, practitioners []models.Practitioner, organizations []models.Organization) []responses.MergedResult {
	attached := attachOrganizations(roles, organizations)
	groups, order := groupRolesByPractitioner(attached)

	practitionersByID := make(map[string]models.Practitioner, len(practitioners))
	for _, practitioner := range practitioners {
		practitionersByID[practitioner.ID] = practitioner
	}

	results := make([]responses.MergedResult, 0, len(order))
	for _, key := range order {
		practitioner, known := practitionersByID[key]
		if !known {
			practitioner = models.Practitioner{ID: key}
		}
		results = append(results, buildMergedResult(practitioner, groups[key]))
	}
	return results
}

func buildMergedResult(practitioner models.Practitioner, roles []models.Role) responses.MergedResult {
	result := responses.MergedResult{
		ID:         practitioner.ID,
		FamilyName: practitioner.FamilyName,
		GivenNames: practitioner.GivenNames,
		Prefix:     practitioner.Prefix,
		Suffix:     practitioner.Suffix,
		Active:     practitioner.Active,
		Roles:      make([]responses.RoleResult, 0, len(roles)),
	}

	for _, identifier := range practitioner.Identifiers {
		result.Identifiers = append(result.Identifiers, responses.PractitionerIdentifier{
			Kind:  string(identifier.Kind),
			Value: identifier.Value,
		})
	}
	for _, qualification := range practitioner.Qualifications {
		result.Qualifications = append(result.Qualifications, responses.PractitionerQualification{
			Code:    qualification.Code,
			Display: qualification.Display,
			System:  qualification.System,
		})
	}
	for _, role := range roles {
		result.Roles = append(result.Roles, buildRoleResult(role))
	}
	return result
}

func buildRoleResult(role models.Role) responses.RoleResult {
	roleResult := responses.RoleResult{
		ID:          role.ID,
		Specialties: role.Specialties,
		Address:     role.Address,
		City:        role.City,
		Active:      role.Active,
	}
	for _, telecom := range role.Telecoms {
		roleResult.Telecoms = append(roleResult.Telecoms, responses.ContactPointResult{System: telecom.System, Value: telecom.Value})
	}
	if role.Organization != nil {
		organization := responses.OrganizationResult{
			ID:         role.Organization.ID,
			Name:       role.Organization.Name,
			Type:       role.Organization.Type,
			Address:    role.Organization.Address,
			City:       role.Organization.City,
			PostalCode: role.Organization.PostalCode,
		}
		for _, telecom := range role.Organization.Telecoms {
			organization.Telecoms = append(organization.Telecoms, responses.ContactPointResult{System: telecom.System, Value: telecom.Value})
		}
		roleResult.Organization = &organization
	}
	return roleResult
}
