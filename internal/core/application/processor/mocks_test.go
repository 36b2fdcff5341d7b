package processor_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/feesplit/feesplitd/internal/core/domain"
	"github.com/feesplit/feesplitd/internal/core/ports"
)

// **** PoolEngine ****

type mockPoolEngine struct {
	mock.Mock
}

func (m *mockPoolEngine) Take(
	ctx context.Context, asset, recipient string, amount uint64,
) error {
	args := m.Called(ctx, asset, recipient, amount)
	return args.Error(0)
}

func (m *mockPoolEngine) Settle(
	ctx context.Context, asset string, amount uint64,
) error {
	args := m.Called(ctx, asset, amount)
	return args.Error(0)
}

func (m *mockPoolEngine) PreviewSwap(
	ctx context.Context, market ports.Market, assetIn string, amountIn uint64,
) (uint64, error) {
	args := m.Called(ctx, market, assetIn, amountIn)

	var res uint64
	if a := args.Get(0); a != nil {
		res = a.(uint64)
	}
	return res, args.Error(1)
}

func (m *mockPoolEngine) Swap(
	ctx context.Context, market ports.Market, assetIn string,
	amountIn, minAmountOut uint64,
) (map[string]int64, error) {
	args := m.Called(ctx, market, assetIn, amountIn, minAmountOut)

	var res map[string]int64
	if a := args.Get(0); a != nil {
		res = a.(map[string]int64)
	}
	return res, args.Error(1)
}

// **** Treasury ****

type mockTreasury struct {
	mock.Mock
}

func (m *mockTreasury) DepositFee(
	ctx context.Context, asset string, amount uint64,
) error {
	args := m.Called(ctx, asset, amount)
	return args.Error(0)
}

// **** WalletService ****

type mockWallet struct {
	mock.Mock
}

func (m *mockWallet) Transfer(
	ctx context.Context, asset, recipient string, amount uint64,
) (string, error) {
	args := m.Called(ctx, asset, recipient, amount)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockWallet) GetBalance(
	ctx context.Context, asset string,
) (uint64, error) {
	args := m.Called(ctx, asset)

	var res uint64
	if a := args.Get(0); a != nil {
		res = a.(uint64)
	}
	return res, args.Error(1)
}

func (m *mockWallet) Close() {
	m.Called()
}

// **** SecurePubSub ****

type mockSecurePubSub struct {
	mock.Mock
}

func (m *mockSecurePubSub) Store() ports.PubSubStore {
	args := m.Called()

	var res ports.PubSubStore
	if a := args.Get(0); a != nil {
		res = a.(ports.PubSubStore)
	}
	return res
}

func (m *mockSecurePubSub) Subscribe(topic, endpoint, secret string) (string, error) {
	args := m.Called(topic, endpoint, secret)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockSecurePubSub) Unsubscribe(topic, id string) error {
	args := m.Called(topic, id)
	return args.Error(0)
}

func (m *mockSecurePubSub) ListSubscriptionsForTopic(topic string) []ports.Subscription {
	args := m.Called(topic)

	var res []ports.Subscription
	if a := args.Get(0); a != nil {
		res = a.([]ports.Subscription)
	}
	return res
}

func (m *mockSecurePubSub) Publish(topic string, message string) error {
	args := m.Called(topic, message)
	return args.Error(0)
}

// **** RepoManager ****

type mockRepoManager struct {
	mock.Mock
}

func (m *mockRepoManager) FeeConfigRepository() domain.FeeConfigRepository {
	args := m.Called()

	var res domain.FeeConfigRepository
	if a := args.Get(0); a != nil {
		res = a.(domain.FeeConfigRepository)
	}
	return res
}

func (m *mockRepoManager) DistributionRepository() domain.DistributionRepository {
	args := m.Called()

	var res domain.DistributionRepository
	if a := args.Get(0); a != nil {
		res = a.(domain.DistributionRepository)
	}
	return res
}

func (m *mockRepoManager) Close() {
	m.Called()
}

// **** FeeConfigRepository ****

type mockFeeConfigRepository struct {
	mock.Mock
}

func (m *mockFeeConfigRepository) AddFeeConfig(
	ctx context.Context, config domain.FeeConfig,
) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *mockFeeConfigRepository) GetFeeConfig(
	ctx context.Context,
) (*domain.FeeConfig, error) {
	args := m.Called(ctx)

	var res *domain.FeeConfig
	if a := args.Get(0); a != nil {
		res = a.(*domain.FeeConfig)
	}
	return res, args.Error(1)
}

func (m *mockFeeConfigRepository) UpdateFeeConfig(
	ctx context.Context, updateFn func(c *domain.FeeConfig) (*domain.FeeConfig, error),
) error {
	args := m.Called(ctx, updateFn)
	return args.Error(0)
}

// **** DistributionRepository ****

type mockDistributionRepository struct {
	mock.Mock
}

func (m *mockDistributionRepository) AddDistribution(
	ctx context.Context, distribution *domain.Distribution,
) error {
	args := m.Called(ctx, distribution)
	return args.Error(0)
}

func (m *mockDistributionRepository) GetAllDistributions(
	ctx context.Context,
) ([]domain.Distribution, error) {
	args := m.Called(ctx)

	var res []domain.Distribution
	if a := args.Get(0); a != nil {
		res = a.([]domain.Distribution)
	}
	return res, args.Error(1)
}

func (m *mockDistributionRepository) GetAllDistributionsForPage(
	ctx context.Context, page domain.Page,
) ([]domain.Distribution, error) {
	args := m.Called(ctx, page)

	var res []domain.Distribution
	if a := args.Get(0); a != nil {
		res = a.([]domain.Distribution)
	}
	return res, args.Error(1)
}

func (m *mockDistributionRepository) GetDistributionStats(
	ctx context.Context,
) (*domain.DistributionStats, error) {
	args := m.Called(ctx)

	var res *domain.DistributionStats
	if a := args.Get(0); a != nil {
		res = a.(*domain.DistributionStats)
	}
	return res, args.Error(1)
}

// **** TradeReport ****

type tradeReport struct {
	baseAsset   string
	quoteAsset  string
	baseDelta   int64
	quoteDelta  int64
	baseAssetIn bool
}

func (r tradeReport) GetBaseAsset() string {
	return r.baseAsset
}
func (r tradeReport) GetQuoteAsset() string {
	return r.quoteAsset
}
func (r tradeReport) GetBaseDelta() int64 {
	return r.baseDelta
}
func (r tradeReport) GetQuoteDelta() int64 {
	return r.quoteDelta
}
func (r tradeReport) IsBaseAssetIn() bool {
	return r.baseAssetIn
}
