package processor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/feesplit/feesplitd/internal/core/application/processor"
	"github.com/feesplit/feesplitd/internal/core/application/pubsub"
	"github.com/feesplit/feesplitd/internal/core/domain"
)

const (
	settlementAsset  = "0000000000000000000000000000000000000000000000000000000000000000"
	quoteAsset       = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	developerAddress = "dev1qfm32940fp2969fjrxmv9r2vauejm78qzrfzg5a"
	custodyAccount   = "feesplitd"
	txid             = "3a1f5f0d0c3f1b61a9d9a2a8a0b64b2c8e8f0d1e2f3a4b5c6d7e8f9a0b1c2d3e"
)

var errSomethingWentWrong = errors.New("something went wrong")

func TestNewService(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	require.NotNil(t, svc)
}

func TestFailingNewService(t *testing.T) {
	t.Parallel()

	engine := &mockPoolEngine{}
	treasury := &mockTreasury{}
	wallet := &mockWallet{}
	pubsubSvc := pubsub.NewService(&mockSecurePubSub{})
	repoManager := &mockRepoManager{}
	policy := *domain.DefaultFeePolicy()
	slippage := decimal.NewFromFloat(0.05)

	tests := []struct {
		name          string
		newService    func() (*processor.Service, error)
		expectedError string
	}{
		{
			name: "missing_pool_engine",
			newService: func() (*processor.Service, error) {
				return processor.NewService(
					nil, treasury, wallet, pubsubSvc, repoManager,
					policy, custodyAccount, slippage,
				)
			},
			expectedError: "missing pool engine",
		},
		{
			name: "missing_treasury",
			newService: func() (*processor.Service, error) {
				return processor.NewService(
					engine, nil, wallet, pubsubSvc, repoManager,
					policy, custodyAccount, slippage,
				)
			},
			expectedError: "missing treasury",
		},
		{
			name: "missing_wallet",
			newService: func() (*processor.Service, error) {
				return processor.NewService(
					engine, treasury, nil, pubsubSvc, repoManager,
					policy, custodyAccount, slippage,
				)
			},
			expectedError: "missing wallet service",
		},
		{
			name: "missing_pubsub",
			newService: func() (*processor.Service, error) {
				return processor.NewService(
					engine, treasury, wallet, nil, repoManager,
					policy, custodyAccount, slippage,
				)
			},
			expectedError: "missing pubsub service",
		},
		{
			name: "missing_repo_manager",
			newService: func() (*processor.Service, error) {
				return processor.NewService(
					engine, treasury, wallet, pubsubSvc, nil,
					policy, custodyAccount, slippage,
				)
			},
			expectedError: "missing repo manager",
		},
		{
			name: "missing_custody_account",
			newService: func() (*processor.Service, error) {
				return processor.NewService(
					engine, treasury, wallet, pubsubSvc, repoManager,
					policy, "", slippage,
				)
			},
			expectedError: "missing custody account",
		},
		{
			name: "negative_price_slippage",
			newService: func() (*processor.Service, error) {
				return processor.NewService(
					engine, treasury, wallet, pubsubSvc, repoManager,
					policy, custodyAccount, decimal.NewFromFloat(-0.01),
				)
			},
			expectedError: "price slippage must be in range [0, 1]",
		},
		{
			name: "too_high_price_slippage",
			newService: func() (*processor.Service, error) {
				return processor.NewService(
					engine, treasury, wallet, pubsubSvc, repoManager,
					policy, custodyAccount, decimal.NewFromFloat(1.01),
				)
			},
			expectedError: "price slippage must be in range [0, 1]",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc, err := tt.newService()
			require.Nil(t, svc)
			require.EqualError(t, err, tt.expectedError)
		})
	}
}

func TestAfterTrade(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, m := newTestService(t)
	m.expectFeeConfig()
	m.engine.On(
		"Take", mock.Anything, settlementAsset, custodyAccount,
		uint64(100_000_000),
	).Return(nil)
	m.treasury.On(
		"DepositFee", mock.Anything, settlementAsset, uint64(90_000_000),
	).Return(nil)
	m.wallet.On(
		"Transfer", mock.Anything, settlementAsset, developerAddress,
		uint64(10_000_000),
	).Return(txid, nil)
	var recorded *domain.Distribution
	m.distRepo.On("AddDistribution", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*domain.Distribution)
		}).Return(nil)
	m.securePubSub.On("Publish", "FEES_PROCESSED", mock.Anything).Return(nil)

	// The pool pays out 1 BTC of settlement asset, the fee is charged on
	// that side.
	report := tradeReport{
		baseAsset:   settlementAsset,
		quoteAsset:  quoteAsset,
		baseDelta:   -1_000_000_000,
		quoteDelta:  25_000_000_000,
		baseAssetIn: false,
	}

	feeTaken, err := svc.AfterTrade(ctx, report)
	require.NoError(t, err)
	require.Equal(t, uint64(100_000_000), feeTaken)

	require.NotNil(t, recorded)
	require.Equal(t, settlementAsset, recorded.FeeAsset)
	require.Equal(t, uint64(100_000_000), recorded.FeeAmount)
	require.Equal(t, settlementAsset, recorded.SettlementAsset)
	require.Equal(t, uint64(100_000_000), recorded.TotalAmount)
	require.Equal(t, uint64(90_000_000), recorded.StrategyAmount)
	require.Equal(t, uint64(10_000_000), recorded.DeveloperAmount)
	require.Equal(t, developerAddress, recorded.DeveloperAddress)
	require.Empty(t, recorded.ConversionPrice)

	time.Sleep(50 * time.Millisecond)
	m.engine.AssertExpectations(t)
	m.treasury.AssertExpectations(t)
	m.wallet.AssertExpectations(t)
	m.distRepo.AssertExpectations(t)
	m.securePubSub.AssertExpectations(t)
}

func TestAfterTradeWithConversion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, m := newTestService(t)
	m.expectFeeConfig()
	m.engine.On(
		"Take", mock.Anything, quoteAsset, custodyAccount, uint64(100_000_000),
	).Return(nil)
	m.engine.On(
		"PreviewSwap", mock.Anything, mock.Anything, quoteAsset,
		uint64(100_000_000),
	).Return(uint64(200_000_000), nil)
	// Execution returns a bit less than previewed, still above the slippage
	// bound. What is received is what gets distributed.
	m.engine.On(
		"Swap", mock.Anything, mock.Anything, quoteAsset,
		uint64(100_000_000), uint64(190_000_000),
	).Return(map[string]int64{
		quoteAsset:      -100_000_000,
		settlementAsset: 198_000_000,
	}, nil)
	m.engine.On(
		"Settle", mock.Anything, quoteAsset, uint64(100_000_000),
	).Return(nil)
	m.engine.On(
		"Take", mock.Anything, settlementAsset, custodyAccount,
		uint64(198_000_000),
	).Return(nil)
	m.treasury.On(
		"DepositFee", mock.Anything, settlementAsset, uint64(178_200_000),
	).Return(nil)
	m.wallet.On(
		"Transfer", mock.Anything, settlementAsset, developerAddress,
		uint64(19_800_000),
	).Return(txid, nil)
	var recorded *domain.Distribution
	m.distRepo.On("AddDistribution", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*domain.Distribution)
		}).Return(nil)
	m.securePubSub.On("Publish", "FEES_PROCESSED", mock.Anything).Return(nil)

	// The pool pays out 1 BTC of quote asset, the fee is collected in an
	// asset that is not the settlement one and must be converted.
	report := tradeReport{
		baseAsset:   settlementAsset,
		quoteAsset:  quoteAsset,
		baseDelta:   40_000_000,
		quoteDelta:  -1_000_000_000,
		baseAssetIn: true,
	}

	feeTaken, err := svc.AfterTrade(ctx, report)
	require.NoError(t, err)
	require.Equal(t, uint64(100_000_000), feeTaken)

	require.NotNil(t, recorded)
	require.Equal(t, quoteAsset, recorded.FeeAsset)
	require.Equal(t, uint64(100_000_000), recorded.FeeAmount)
	require.Equal(t, settlementAsset, recorded.SettlementAsset)
	require.Equal(t, uint64(198_000_000), recorded.TotalAmount)
	require.Equal(t, uint64(178_200_000), recorded.StrategyAmount)
	require.Equal(t, uint64(19_800_000), recorded.DeveloperAmount)
	require.Equal(t, "1.98", recorded.ConversionPrice)

	time.Sleep(50 * time.Millisecond)
	m.engine.AssertExpectations(t)
	m.treasury.AssertExpectations(t)
	m.wallet.AssertExpectations(t)
	m.distRepo.AssertExpectations(t)
	m.securePubSub.AssertExpectations(t)
}

func TestAfterTradeBelowFeeThreshold(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, m := newTestService(t)

	// 9 units settled produce no whole fee unit, the pool must stay
	// untouched.
	report := tradeReport{
		baseAsset:   settlementAsset,
		quoteAsset:  quoteAsset,
		baseDelta:   -9,
		quoteDelta:  225,
		baseAssetIn: false,
	}

	feeTaken, err := svc.AfterTrade(ctx, report)
	require.NoError(t, err)
	require.Zero(t, feeTaken)

	time.Sleep(50 * time.Millisecond)
	require.Empty(t, m.engine.Calls)
	require.Empty(t, m.treasury.Calls)
	require.Empty(t, m.wallet.Calls)
	require.Empty(t, m.repoManager.Calls)
	require.Empty(t, m.securePubSub.Calls)
}

func TestAfterTradeCumulativeSplit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, m := newTestService(t)
	m.expectFeeConfig()
	m.engine.On(
		"Take", mock.Anything, settlementAsset, custodyAccount,
		uint64(10_000_000),
	).Return(nil)
	m.treasury.On(
		"DepositFee", mock.Anything, settlementAsset, uint64(9_000_000),
	).Return(nil)
	m.wallet.On(
		"Transfer", mock.Anything, settlementAsset, developerAddress,
		uint64(1_000_000),
	).Return(txid, nil)
	recorded := make([]*domain.Distribution, 0, 10)
	m.distRepo.On("AddDistribution", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			recorded = append(recorded, args.Get(1).(*domain.Distribution))
		}).Return(nil)
	m.securePubSub.On("Publish", "FEES_PROCESSED", mock.Anything).Return(nil)

	report := tradeReport{
		baseAsset:   settlementAsset,
		quoteAsset:  quoteAsset,
		baseDelta:   -100_000_000,
		quoteDelta:  2_500_000_000,
		baseAssetIn: false,
	}

	for i := 0; i < 10; i++ {
		feeTaken, err := svc.AfterTrade(ctx, report)
		require.NoError(t, err)
		require.Equal(t, uint64(10_000_000), feeTaken)
	}

	require.Len(t, recorded, 10)
	var total, strategy, developer uint64
	for _, d := range recorded {
		require.Equal(t, d.TotalAmount, d.StrategyAmount+d.DeveloperAmount)
		total += d.TotalAmount
		strategy += d.StrategyAmount
		developer += d.DeveloperAmount
	}
	require.Equal(t, uint64(100_000_000), total)
	require.Equal(t, uint64(90_000_000), strategy)
	require.Equal(t, uint64(10_000_000), developer)
	require.Equal(t, total, strategy+developer)
}

func TestFailingAfterTrade(t *testing.T) {
	t.Parallel()

	settlementReport := tradeReport{
		baseAsset:   settlementAsset,
		quoteAsset:  quoteAsset,
		baseDelta:   -1_000_000_000,
		quoteDelta:  25_000_000_000,
		baseAssetIn: false,
	}
	conversionReport := tradeReport{
		baseAsset:   settlementAsset,
		quoteAsset:  quoteAsset,
		baseDelta:   40_000_000,
		quoteDelta:  -1_000_000_000,
		baseAssetIn: true,
	}

	tests := []struct {
		name          string
		report        tradeReport
		setup         func(m *serviceMocks)
		check         func(t *testing.T, m *serviceMocks)
		expectedError string
	}{
		{
			name:   "invalid_asset_pair",
			report: tradeReport{baseAsset: settlementAsset},
			setup:  func(m *serviceMocks) {},
			expectedError: domain.ErrTradeInvalidAssetPair.Error(),
		},
		{
			name:   "failing_fee_collection",
			report: settlementReport,
			setup: func(m *serviceMocks) {
				m.engine.On(
					"Take", mock.Anything, settlementAsset, custodyAccount,
					uint64(100_000_000),
				).Return(errSomethingWentWrong)
			},
			check: func(t *testing.T, m *serviceMocks) {
				require.Empty(t, m.treasury.Calls)
				require.Empty(t, m.wallet.Calls)
				require.Empty(t, m.repoManager.Calls)
			},
			expectedError: "failed to collect fee from pool custody: something went wrong",
		},
		{
			name:   "unavailable_fee_config",
			report: settlementReport,
			setup: func(m *serviceMocks) {
				m.engine.On(
					"Take", mock.Anything, settlementAsset, custodyAccount,
					uint64(100_000_000),
				).Return(nil)
				m.repoManager.On("FeeConfigRepository").Return(m.configRepo)
				m.configRepo.On("GetFeeConfig", mock.Anything).
					Return(nil, errSomethingWentWrong)
			},
			expectedError: processor.ErrServiceUnavailable.Error(),
		},
		{
			name:   "failing_conversion",
			report: conversionReport,
			setup: func(m *serviceMocks) {
				m.engine.On(
					"Take", mock.Anything, quoteAsset, custodyAccount,
					uint64(100_000_000),
				).Return(nil)
				m.expectFeeConfig()
				m.engine.On(
					"PreviewSwap", mock.Anything, mock.Anything, quoteAsset,
					uint64(100_000_000),
				).Return(uint64(200_000_000), nil)
				m.engine.On(
					"Swap", mock.Anything, mock.Anything, quoteAsset,
					uint64(100_000_000), uint64(190_000_000),
				).Return(nil, errSomethingWentWrong)
			},
			check: func(t *testing.T, m *serviceMocks) {
				require.Empty(t, m.treasury.Calls)
				require.Empty(t, m.wallet.Calls)
			},
			expectedError: "failed to execute fee conversion: something went wrong",
		},
		{
			name:   "failing_developer_payout",
			report: settlementReport,
			setup: func(m *serviceMocks) {
				m.engine.On(
					"Take", mock.Anything, settlementAsset, custodyAccount,
					uint64(100_000_000),
				).Return(nil)
				m.expectFeeConfig()
				m.treasury.On(
					"DepositFee", mock.Anything, settlementAsset,
					uint64(90_000_000),
				).Return(nil)
				m.wallet.On(
					"Transfer", mock.Anything, settlementAsset,
					developerAddress, uint64(10_000_000),
				).Return("", errSomethingWentWrong)
			},
			check: func(t *testing.T, m *serviceMocks) {
				m.distRepo.AssertNotCalled(
					t, "AddDistribution", mock.Anything, mock.Anything,
				)
			},
			expectedError: "failed to pay out developer share: something went wrong",
		},
		{
			name:   "failing_distribution_record",
			report: settlementReport,
			setup: func(m *serviceMocks) {
				m.engine.On(
					"Take", mock.Anything, settlementAsset, custodyAccount,
					uint64(100_000_000),
				).Return(nil)
				m.expectFeeConfig()
				m.treasury.On(
					"DepositFee", mock.Anything, settlementAsset,
					uint64(90_000_000),
				).Return(nil)
				m.wallet.On(
					"Transfer", mock.Anything, settlementAsset,
					developerAddress, uint64(10_000_000),
				).Return(txid, nil)
				m.distRepo.On(
					"AddDistribution", mock.Anything, mock.Anything,
				).Return(errSomethingWentWrong)
			},
			expectedError: processor.ErrServiceUnavailable.Error(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, m := newTestService(t)
			tt.setup(m)

			feeTaken, err := svc.AfterTrade(ctx, tt.report)
			require.EqualError(t, err, tt.expectedError)
			require.Zero(t, feeTaken)

			time.Sleep(50 * time.Millisecond)
			m.securePubSub.AssertNotCalled(
				t, "Publish", mock.Anything, mock.Anything,
			)
			if tt.check != nil {
				tt.check(t, m)
			}
		})
	}
}

type serviceMocks struct {
	engine       *mockPoolEngine
	treasury     *mockTreasury
	wallet       *mockWallet
	securePubSub *mockSecurePubSub
	repoManager  *mockRepoManager
	configRepo   *mockFeeConfigRepository
	distRepo     *mockDistributionRepository
}

// expectFeeConfig wires the repo manager to serve the test fee config and
// the distribution repository.
func (m *serviceMocks) expectFeeConfig() {
	config, _ := domain.NewFeeConfig(settlementAsset, developerAddress)
	m.repoManager.On("FeeConfigRepository").Return(m.configRepo)
	m.repoManager.On("DistributionRepository").Return(m.distRepo)
	m.configRepo.On("GetFeeConfig", mock.Anything).Return(config, nil)
}

func newTestService(t *testing.T) (*processor.Service, *serviceMocks) {
	t.Helper()

	m := &serviceMocks{
		engine:       &mockPoolEngine{},
		treasury:     &mockTreasury{},
		wallet:       &mockWallet{},
		securePubSub: &mockSecurePubSub{},
		repoManager:  &mockRepoManager{},
		configRepo:   &mockFeeConfigRepository{},
		distRepo:     &mockDistributionRepository{},
	}

	svc, err := processor.NewService(
		m.engine, m.treasury, m.wallet, pubsub.NewService(m.securePubSub),
		m.repoManager, *domain.DefaultFeePolicy(), custodyAccount,
		decimal.NewFromFloat(0.05),
	)
	require.NoError(t, err)
	require.NotNil(t, svc)
	return svc, m
}
