package constvars

// Batching and pagination ceilings. Every limit below exists to keep the
// worst-case outbound call count of one logical search under the platform
// quota; the reverse lookup is the most expensive path with
// SearchMaxOrganizationPages + 2*SearchMaxBatchCount calls.
const (
	SearchDefaultPageSize      = 10
	SearchIdentifierPageSize   = 5
	SearchRolePageSize         = 100
	SearchOrganizationPageSize = 50

	// Maximum identifiers sent in one batched query.
	SearchBatchSize = 20

	// Maximum batched queries per phase. Identifiers beyond the ceiling are
	// silently skipped; results are a documented best-effort subset.
	SearchMaxBatchCount = 5

	// Maximum organization pages followed in the reverse lookup phase 1.
	SearchMaxOrganizationPages = 3

	// Extra continuation pages fetched before applying post-filters, to
	// reduce false negatives when filtering a truncated page.
	SearchMaxExtraFilterPages = 2

	SearchMaxNamePlans = 4
)
