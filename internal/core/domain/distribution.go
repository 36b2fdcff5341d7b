package domain

import (
	"time"

	"github.com/google/uuid"
)

// Distribution records the outcome of distributing the fee collected on a
// single trade. One record is appended per trade with a non-zero fee.
type Distribution struct {
	Id string
	// Fee asset and amount as collected from the pool, before any
	// conversion.
	FeeAsset  string
	FeeAmount uint64
	// Amounts distributed, all in settlement asset units.
	SettlementAsset string
	TotalAmount     uint64
	StrategyAmount  uint64
	DeveloperAmount uint64
	// DeveloperAddress is the recipient of the developer share at the time
	// of the distribution.
	DeveloperAddress string
	// ConversionPrice is the realized settlement/fee asset price of the
	// conversion trade, empty if the fee was already denominated in the
	// settlement asset.
	ConversionPrice string
	Timestamp       int64
}

// NewDistribution returns a new distribution with a new id and the given
// amounts set, validating that the shares add up to the total exactly.
func NewDistribution(
	collected PendingFee, settlementAsset string,
	totalAmount, strategyAmount, developerAmount uint64,
	developerAddress, conversionPrice string,
) (*Distribution, error) {
	if collected.Asset == "" || settlementAsset == "" {
		return nil, ErrDistributionMissingAsset
	}
	if developerAddress == "" {
		return nil, ErrDistributionMissingRecipient
	}
	if strategyAmount+developerAmount != totalAmount {
		return nil, ErrDistributionUnbalanced
	}

	return &Distribution{
		Id:               uuid.New().String(),
		FeeAsset:         collected.Asset,
		FeeAmount:        collected.Amount,
		SettlementAsset:  settlementAsset,
		TotalAmount:      totalAmount,
		StrategyAmount:   strategyAmount,
		DeveloperAmount:  developerAmount,
		DeveloperAddress: developerAddress,
		ConversionPrice:  conversionPrice,
		Timestamp:        time.Now().Unix(),
	}, nil
}

// DistributionStats holds the cumulative totals of the distribution log, all
// in settlement asset units.
type DistributionStats struct {
	SettlementAsset string
	TotalFees       uint64
	StrategyFees    uint64
	DeveloperFees   uint64
	Count           uint64
}
