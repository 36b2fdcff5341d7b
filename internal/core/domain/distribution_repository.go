package domain

import "context"

// DistributionRepository is the abstraction for any kind of database
// intended to persist the append-only log of Distributions.
type DistributionRepository interface {
	// AddDistribution appends a distribution to the log and updates the
	// cumulative stats accordingly.
	AddDistribution(ctx context.Context, distribution *Distribution) error
	// GetAllDistributions returns the whole distribution log, most recent
	// first.
	GetAllDistributions(ctx context.Context) ([]Distribution, error)
	// GetAllDistributionsForPage returns the distributions included in the
	// given page, most recent first.
	GetAllDistributionsForPage(
		ctx context.Context, page Page,
	) ([]Distribution, error)
	// GetDistributionStats returns the cumulative totals of the log.
	GetDistributionStats(ctx context.Context) (*DistributionStats, error)
}
