package domain

import (
	"github.com/feesplit/feesplitd/pkg/mathutil"
)

// FeePolicy defines the protocol fee rates applied to every trade, expressed
// in parts per million of the settled amount. The policy is fixed at startup
// and never changes for the lifetime of the daemon.
type FeePolicy struct {
	// TotalFeePpm is the cut charged on the settled amount of a trade.
	TotalFeePpm uint64
	// StrategySharePpm is the portion of the collected fee routed to the
	// strategy treasury. Whatever is left goes to the developer.
	StrategySharePpm uint64
}

// NewFeePolicy returns a new policy with the given rates set, or an error if
// any of them exceeds the parts-per-million denominator.
func NewFeePolicy(totalFeePpm, strategySharePpm uint64) (*FeePolicy, error) {
	if !isValidPpm(totalFeePpm) {
		return nil, ErrPolicyInvalidTotalFee
	}
	if !isValidPpm(strategySharePpm) {
		return nil, ErrPolicyInvalidStrategyShare
	}

	return &FeePolicy{
		TotalFeePpm:      totalFeePpm,
		StrategySharePpm: strategySharePpm,
	}, nil
}

// DefaultFeePolicy returns the policy with the default rates set.
func DefaultFeePolicy() *FeePolicy {
	return &FeePolicy{
		TotalFeePpm:      DefaultTotalFeePpm,
		StrategySharePpm: DefaultStrategySharePpm,
	}
}

// TotalFee returns the fee cut of the given settled amount, rounded down.
// Amounts too small to produce a whole fee unit yield 0.
func (p FeePolicy) TotalFee(amount uint64) uint64 {
	return mathutil.Fee(amount, p.TotalFeePpm)
}

// Split divides a collected fee into the strategy and developer shares. The
// developer share is computed by subtraction, the two always add up to the
// given total exactly.
func (p FeePolicy) Split(totalFee uint64) (strategyFee, developerFee uint64) {
	return mathutil.SplitByShare(totalFee, p.StrategySharePpm)
}

func isValidPpm(ppm uint64) bool {
	return ppm <= mathutil.OneMillion
}
