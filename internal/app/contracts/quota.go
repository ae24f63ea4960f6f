package contracts

import "context"

// CallQuota guards the platform-imposed ceiling on outbound registry calls.
type CallQuota interface {
	// Allow returns an error when the current window's quota is exhausted.
	Allow(ctx context.Context) error
}
