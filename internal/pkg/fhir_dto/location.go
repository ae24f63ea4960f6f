package fhir_dto

type Location struct {
	ResourceType string  `json:"resourceType,omitempty"`
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name,omitempty"`
	Address      Address `json:"address,omitempty"`
}
