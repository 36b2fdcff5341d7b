package processor

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/feesplit/feesplitd/internal/core/domain"
	"github.com/feesplit/feesplitd/internal/core/ports"
	"github.com/feesplit/feesplitd/pkg/mathutil"
)

// AfterTrade is invoked by the pool engine once per settled trade. It
// calculates the protocol fee on the settled amount, pulls it from pool
// custody, normalizes it to the settlement asset and pushes the resulting
// shares to the treasury and the developer. It returns the fee amount taken,
// in fee asset units, so that the engine can account for it. Any error makes
// the engine reject the enclosing trade.
func (s *Service) AfterTrade(
	ctx context.Context, report ports.TradeReport,
) (uint64, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	trade, err := domain.NewTradeContext(
		report.GetBaseAsset(), report.GetQuoteAsset(),
		report.GetBaseDelta(), report.GetQuoteDelta(), report.IsBaseAssetIn(),
	)
	if err != nil {
		return 0, err
	}

	if err := s.extractFee(ctx, *trade); err != nil {
		return 0, err
	}
	if s.pending.IsZero() {
		log.Debugf(
			"no fee to collect for trade on pair %s/%s",
			trade.BaseAsset, trade.QuoteAsset,
		)
		return 0, nil
	}

	feeTaken := s.pending.Amount
	if err := s.distribute(ctx); err != nil {
		return 0, err
	}
	return feeTaken, nil
}

// extractFee calculates the fee on the settled amount of the trade and pulls
// it from pool custody into the daemon's engine-side account. Trades too
// small to produce a whole fee unit leave the pool untouched.
func (s *Service) extractFee(
	ctx context.Context, trade domain.TradeContext,
) error {
	feeAsset := trade.FeeAsset()
	feeAmount := s.policy.TotalFee(trade.FeeBase())
	if feeAmount == 0 {
		s.pending = domain.PendingFee{}
		return nil
	}

	if err := s.engine.Take(
		ctx, feeAsset, s.custodyAccount, feeAmount,
	); err != nil {
		log.WithError(err).Warn("failed to collect fee from pool custody")
		return fmt.Errorf("failed to collect fee from pool custody: %s", err)
	}

	s.pending = domain.PendingFee{Asset: feeAsset, Amount: feeAmount}
	return nil
}

// distribute normalizes the pending fee to the settlement asset, splits it
// by policy and pushes the two shares out. The pending fee is cleared before
// any outbound transfer is made.
func (s *Service) distribute(ctx context.Context) error {
	config, err := s.repoManager.FeeConfigRepository().GetFeeConfig(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to fetch fee config")
		return ErrServiceUnavailable
	}

	totalAmount := s.pending.Amount
	conversionPrice := ""
	if s.pending.Asset != config.SettlementAsset {
		totalAmount, conversionPrice, err = s.convert(
			ctx, s.pending, config.SettlementAsset,
		)
		if err != nil {
			return err
		}
	}

	strategyAmount, developerAmount := s.policy.Split(totalAmount)

	collected := s.pending
	s.pending = domain.PendingFee{}

	if strategyAmount > 0 {
		if err := s.treasury.DepositFee(
			ctx, config.SettlementAsset, strategyAmount,
		); err != nil {
			log.WithError(err).Warn("failed to deposit strategy share to treasury")
			return fmt.Errorf("failed to deposit strategy share: %s", err)
		}
	}
	if developerAmount > 0 {
		txid, err := s.wallet.Transfer(
			ctx, config.SettlementAsset, config.DeveloperAddress, developerAmount,
		)
		if err != nil {
			log.WithError(err).Warn("failed to pay out developer share")
			return fmt.Errorf("failed to pay out developer share: %s", err)
		}
		log.Debugf("developer share paid out with tx %s", txid)
	}

	distribution, err := domain.NewDistribution(
		collected, config.SettlementAsset,
		totalAmount, strategyAmount, developerAmount,
		config.DeveloperAddress, conversionPrice,
	)
	if err != nil {
		return err
	}
	if err := s.repoManager.DistributionRepository().AddDistribution(
		ctx, distribution,
	); err != nil {
		log.WithError(err).Warnf(
			"failed to store distribution with id %s", distribution.Id,
		)
		return ErrServiceUnavailable
	}

	log.Debugf(
		"distributed fees for trade: %d to treasury, %d to developer (%s)",
		strategyAmount, developerAmount, config.SettlementAsset,
	)

	go func() {
		if err := s.pubsub.PublishFeesProcessedEvent(*distribution); err != nil {
			log.WithError(err).Warnf(
				"pubsub: failed to publish topic for distribution with id %s",
				distribution.Id,
			)
		} else {
			log.Debugf(
				"pubsub: published topic for distribution with id %s",
				distribution.Id,
			)
		}
	}()

	return nil
}

// convert trades the pending fee against the pool for the settlement asset.
// The price bound given to the engine is derived from the configured
// slippage tolerance over the previewed execution, whatever is received
// within that bound is what gets distributed.
func (s *Service) convert(
	ctx context.Context, pending domain.PendingFee, settlementAsset string,
) (uint64, string, error) {
	pair := conversionPair{settlementAsset, pending.Asset}

	expectedAmount, err := s.engine.PreviewSwap(
		ctx, pair, pending.Asset, pending.Amount,
	)
	if err != nil {
		log.WithError(err).Warn("failed to preview fee conversion")
		return 0, "", fmt.Errorf("failed to preview fee conversion: %s", err)
	}

	minAmountOut := mathutil.LessPercentage(expectedAmount, s.priceSlippage)
	deltas, err := s.engine.Swap(
		ctx, pair, pending.Asset, pending.Amount, minAmountOut,
	)
	if err != nil {
		log.WithError(err).Warn("failed to execute fee conversion")
		return 0, "", fmt.Errorf("failed to execute fee conversion: %s", err)
	}

	// Owed amounts are settled before cashing in anything.
	for asset, delta := range deltas {
		if delta >= 0 {
			continue
		}
		if err := s.engine.Settle(ctx, asset, uint64(-delta)); err != nil {
			log.WithError(err).Warn("failed to settle fee conversion")
			return 0, "", fmt.Errorf("failed to settle fee conversion: %s", err)
		}
	}

	receivedAmount := uint64(0)
	for asset, delta := range deltas {
		if delta <= 0 {
			continue
		}
		if err := s.engine.Take(
			ctx, asset, s.custodyAccount, uint64(delta),
		); err != nil {
			log.WithError(err).Warn("failed to collect converted fee")
			return 0, "", fmt.Errorf("failed to collect converted fee: %s", err)
		}
		if asset == settlementAsset {
			receivedAmount = uint64(delta)
		}
	}
	if receivedAmount == 0 {
		return 0, "", fmt.Errorf(
			"fee conversion returned no %s", settlementAsset,
		)
	}

	price := mathutil.Div(receivedAmount, pending.Amount)
	return receivedAmount, price.String(), nil
}
