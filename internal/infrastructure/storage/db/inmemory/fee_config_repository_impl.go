package inmemory

import (
	"context"
	"sync"

	"github.com/feesplit/feesplitd/internal/core/domain"
)

type feeConfigRepositoryImpl struct {
	config *domain.FeeConfig
	lock   *sync.RWMutex
}

func NewFeeConfigRepositoryImpl() domain.FeeConfigRepository {
	return &feeConfigRepositoryImpl{lock: &sync.RWMutex{}}
}

func (r *feeConfigRepositoryImpl) AddFeeConfig(
	_ context.Context, config domain.FeeConfig,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.config != nil {
		return nil
	}

	r.config = &config
	return nil
}

func (r *feeConfigRepositoryImpl) GetFeeConfig(
	_ context.Context,
) (*domain.FeeConfig, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.config == nil {
		return nil, domain.ErrConfigNotFound
	}

	config := *r.config
	return &config, nil
}

func (r *feeConfigRepositoryImpl) UpdateFeeConfig(
	_ context.Context,
	updateFn func(c *domain.FeeConfig) (*domain.FeeConfig, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.config == nil {
		return domain.ErrConfigNotFound
	}

	config := *r.config
	updatedConfig, err := updateFn(&config)
	if err != nil {
		return err
	}

	r.config = updatedConfig
	return nil
}
