package constvars

const (
	SearchSuccessMessage = "Search completed successfully"
)

// Strategy messages embedded in the search envelope. These are user-facing
// and localized for the registry's audience.
const (
	SearchNoFacilityInCityMessageFormat = "Aucune structure trouvée à %s"
	SearchTooManyResultsMessage         = "Trop de résultats. Veuillez préciser votre recherche (nom, ville ou spécialité)."
)
