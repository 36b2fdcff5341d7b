package inmemory

import (
	"github.com/feesplit/feesplitd/internal/core/domain"
	"github.com/feesplit/feesplitd/internal/core/ports"
)

type repoManager struct {
	feeConfigRepository    domain.FeeConfigRepository
	distributionRepository domain.DistributionRepository
}

func NewRepoManager() ports.RepoManager {
	return &repoManager{
		feeConfigRepository:    NewFeeConfigRepositoryImpl(),
		distributionRepository: NewDistributionRepositoryImpl(),
	}
}

func (d *repoManager) FeeConfigRepository() domain.FeeConfigRepository {
	return d.feeConfigRepository
}

func (d *repoManager) DistributionRepository() domain.DistributionRepository {
	return d.distributionRepository
}

func (d *repoManager) Close() {}
