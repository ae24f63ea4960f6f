package utils

import (
	"annuaire-service/internal/pkg/exceptions"
	"strings"
)

// ParseReference extracts the logical id from a FHIR literal reference such
// as "Practitioner/003-123456" or an absolute URL ending in the same two
// segments. A reference of the wrong resource type or without an id is a
// malformed-reference error, never an empty id.
func ParseReference(reference, resourceType string) (string, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(reference), "/")
	if trimmed == "" {
		return "", exceptions.ErrMalformedReference(nil, reference)
	}

	if idx := strings.IndexAny(trimmed, "?#"); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return "", exceptions.ErrMalformedReference(nil, reference)
	}

	id := parts[len(parts)-1]
	kind := parts[len(parts)-2]
	if id == "" || kind != resourceType {
		return "", exceptions.ErrMalformedReference(nil, reference)
	}
	return id, nil
}
