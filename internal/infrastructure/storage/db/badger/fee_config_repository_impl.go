package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/feesplit/feesplitd/internal/core/domain"
)

// feeConfigKey is the fixed key of the single config slot.
const feeConfigKey = "fee_config"

type feeConfigRepositoryImpl struct {
	store *badgerhold.Store
}

func newFeeConfigRepositoryImpl(
	store *badgerhold.Store,
) domain.FeeConfigRepository {
	return feeConfigRepositoryImpl{store}
}

func (r feeConfigRepositoryImpl) AddFeeConfig(
	_ context.Context, config domain.FeeConfig,
) error {
	if err := r.store.Insert(feeConfigKey, &config); err != nil {
		if err == badgerhold.ErrKeyExists {
			return nil
		}
		return err
	}
	return nil
}

func (r feeConfigRepositoryImpl) GetFeeConfig(
	_ context.Context,
) (*domain.FeeConfig, error) {
	return r.getFeeConfig()
}

func (r feeConfigRepositoryImpl) UpdateFeeConfig(
	_ context.Context,
	updateFn func(c *domain.FeeConfig) (*domain.FeeConfig, error),
) error {
	config, err := r.getFeeConfig()
	if err != nil {
		return err
	}

	updatedConfig, err := updateFn(config)
	if err != nil {
		return err
	}

	return r.store.Update(feeConfigKey, updatedConfig)
}

func (r feeConfigRepositoryImpl) getFeeConfig() (*domain.FeeConfig, error) {
	var config domain.FeeConfig
	if err := r.store.Get(feeConfigKey, &config); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrConfigNotFound
		}
		return nil, err
	}
	return &config, nil
}
