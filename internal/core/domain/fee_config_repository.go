package domain

import "context"

// FeeConfigRepository is the abstraction for any kind of database intended
// to persist the fee config. The config is a single slot, created once at
// startup and only mutated through developer address rotations.
type FeeConfigRepository interface {
	// AddFeeConfig stores the config if none exists yet, otherwise it's a
	// no-op.
	AddFeeConfig(ctx context.Context, config FeeConfig) error
	// GetFeeConfig returns the current config.
	GetFeeConfig(ctx context.Context) (*FeeConfig, error)
	// UpdateFeeConfig updates the state of the config. The closure function
	// let's to commit multiple changes in a transactional way.
	UpdateFeeConfig(
		ctx context.Context, updateFn func(c *FeeConfig) (*FeeConfig, error),
	) error
}
