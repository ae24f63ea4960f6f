package search

import (
	"annuaire-service/internal/pkg/dto/responses"
	"strings"
)

// Post-filters over merged results. Both are monotone and commute: the order
// of application does not change the final set.

func filterByCity(results []responses.MergedResult, city string) []responses.MergedResult {
	if city == "" {
		return results
	}
	filtered := make([]responses.MergedResult, 0, len(results))
	for _, result := range results {
		if resultMatchesCity(result, city) {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

func resultMatchesCity(result responses.MergedResult, city string) bool {
	for _, role := range result.Roles {
		if containsFold(role.Address, city) || containsFold(role.City, city) {
			return true
		}
		if role.Organization != nil {
			if containsFold(role.Organization.City, city) || containsFold(role.Organization.Address, city) {
				return true
			}
		}
	}
	return false
}

func filterBySpecialty(results []responses.MergedResult, specialty string) []responses.MergedResult {
	if specialty == "" {
		return results
	}
	filtered := make([]responses.MergedResult, 0, len(results))
	for _, result := range results {
		if resultMatchesSpecialty(result, specialty) {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

func resultMatchesSpecialty(result responses.MergedResult, specialty string) bool {
	for _, role := range result.Roles {
		for _, label := range role.Specialties {
			if containsFold(label, specialty) {
				return true
			}
		}
	}
	for _, qualification := range result.Qualifications {
		if containsFold(qualification.Display, specialty) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
