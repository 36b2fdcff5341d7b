package inmemory

import (
	"context"
	"sync"

	"github.com/feesplit/feesplitd/internal/core/domain"
)

type distributionRepositoryImpl struct {
	distributions []domain.Distribution
	stats         domain.DistributionStats
	lock          *sync.RWMutex
}

func NewDistributionRepositoryImpl() domain.DistributionRepository {
	return &distributionRepositoryImpl{
		distributions: make([]domain.Distribution, 0),
		lock:          &sync.RWMutex{},
	}
}

func (r *distributionRepositoryImpl) AddDistribution(
	_ context.Context, distribution *domain.Distribution,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.distributions = append(r.distributions, *distribution)
	r.stats.SettlementAsset = distribution.SettlementAsset
	r.stats.TotalFees += distribution.TotalAmount
	r.stats.StrategyFees += distribution.StrategyAmount
	r.stats.DeveloperFees += distribution.DeveloperAmount
	r.stats.Count++
	return nil
}

func (r *distributionRepositoryImpl) GetAllDistributions(
	_ context.Context,
) ([]domain.Distribution, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	list := make([]domain.Distribution, 0, len(r.distributions))
	for i := len(r.distributions) - 1; i >= 0; i-- {
		list = append(list, r.distributions[i])
	}
	return list, nil
}

func (r *distributionRepositoryImpl) GetAllDistributionsForPage(
	_ context.Context, page domain.Page,
) ([]domain.Distribution, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	offset := page.Offset()
	if offset >= len(r.distributions) {
		return []domain.Distribution{}, nil
	}

	list := make([]domain.Distribution, 0, page.Size)
	for i := len(r.distributions) - 1 - offset; i >= 0 && len(list) < page.Size; i-- {
		list = append(list, r.distributions[i])
	}
	return list, nil
}

func (r *distributionRepositoryImpl) GetDistributionStats(
	_ context.Context,
) (*domain.DistributionStats, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	stats := r.stats
	return &stats, nil
}
