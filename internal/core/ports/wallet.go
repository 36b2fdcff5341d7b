package ports

import "context"

// WalletService is the interface to the custody wallet used to pay out the
// developer share of the collected fees.
type WalletService interface {
	// Transfer sends the given amount from the custody wallet to the
	// recipient address and returns the id of the resulting transaction.
	Transfer(
		ctx context.Context, asset, recipient string, amount uint64,
	) (string, error)
	// GetBalance returns the custody balance of the given asset.
	GetBalance(ctx context.Context, asset string) (uint64, error)
	Close()
}
