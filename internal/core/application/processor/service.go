package processor

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/feesplit/feesplitd/internal/core/application/pubsub"
	"github.com/feesplit/feesplitd/internal/core/domain"
	"github.com/feesplit/feesplitd/internal/core/ports"
)

var (
	ErrServiceUnavailable = fmt.Errorf("service is unavailable, retry later")

	maxPriceSlippage = decimal.NewFromInt(1)
)

// Service collects the protocol fee of every trade settled by the pool
// engine and distributes it between the strategy treasury and the developer.
// Trades are processed one at a time, a trade is fully distributed or fully
// rejected before the next one is looked at.
type Service struct {
	engine      ports.PoolEngine
	treasury    ports.Treasury
	wallet      ports.WalletService
	pubsub      *pubsub.Service
	repoManager ports.RepoManager

	policy         domain.FeePolicy
	custodyAccount string
	priceSlippage  decimal.Decimal

	lock    sync.Mutex
	pending domain.PendingFee
}

func NewService(
	engine ports.PoolEngine, treasury ports.Treasury,
	wallet ports.WalletService, pubsubSvc *pubsub.Service,
	repoManager ports.RepoManager,
	policy domain.FeePolicy, custodyAccount string,
	priceSlippage decimal.Decimal,
) (*Service, error) {
	if engine == nil {
		return nil, fmt.Errorf("missing pool engine")
	}
	if treasury == nil {
		return nil, fmt.Errorf("missing treasury")
	}
	if wallet == nil {
		return nil, fmt.Errorf("missing wallet service")
	}
	if pubsubSvc == nil {
		return nil, fmt.Errorf("missing pubsub service")
	}
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	if custodyAccount == "" {
		return nil, fmt.Errorf("missing custody account")
	}
	if priceSlippage.IsNegative() || priceSlippage.GreaterThan(maxPriceSlippage) {
		return nil, fmt.Errorf(
			"price slippage must be in range [0, %s]", maxPriceSlippage,
		)
	}

	return &Service{
		engine:         engine,
		treasury:       treasury,
		wallet:         wallet,
		pubsub:         pubsubSvc,
		repoManager:    repoManager,
		policy:         policy,
		custodyAccount: custodyAccount,
		priceSlippage:  priceSlippage,
	}, nil
}
