package ports

import "context"

// PoolEngine is the interface to the AMM engine the daemon is attached to.
// Custody movements settle synchronously: when a method returns without
// error the engine has fully accounted the requested movement.
type PoolEngine interface {
	// Take moves the given amount from pool custody to the recipient
	// engine-side account.
	Take(ctx context.Context, asset, recipient string, amount uint64) error
	// Settle pays the given amount from the caller's engine-side account
	// back into pool liquidity.
	Settle(ctx context.Context, asset string, amount uint64) error
	// PreviewSwap returns the amount of the other asset of the pair the
	// caller would receive by swapping the given amount of assetIn at the
	// current pool price.
	PreviewSwap(
		ctx context.Context, market Market, assetIn string, amountIn uint64,
	) (uint64, error)
	// Swap trades the given amount of assetIn against the pool, rejecting
	// executions that would return less than minAmountOut. It returns the
	// settled delta of each asset of the pair from the caller's perspective,
	// positive for amounts owed to the caller, negative for amounts the
	// caller owes to the pool.
	Swap(
		ctx context.Context, market Market, assetIn string,
		amountIn, minAmountOut uint64,
	) (map[string]int64, error)
}
