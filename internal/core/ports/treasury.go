package ports

import "context"

// Treasury is the interface to the strategy treasury the biggest share of
// the collected fees is pushed to.
type Treasury interface {
	// DepositFee pushes the given amount to the treasury.
	DepositFee(ctx context.Context, asset string, amount uint64) error
}
