package ports

import (
	"github.com/feesplit/feesplitd/internal/core/domain"
)

// RepoManager gives access to all the repositories of the daemon.
type RepoManager interface {
	// FeeConfigRepository returns the repository of the fee config slot.
	FeeConfigRepository() domain.FeeConfigRepository
	// DistributionRepository returns the repository of the distribution log.
	DistributionRepository() domain.DistributionRepository

	// Close should be used to gracefully close the connection with all the
	// underlying stores.
	Close()
}
