package mathutil

import (
	"math/bits"
)

// OneMillion is the denominator of every rate expressed in parts per million.
var OneMillion = uint64(1_000_000)

// Fee calculates the fee cut of an amount given a rate expressed in parts
// per million (ie. 100_000 = 10%). The result is rounded down, amounts too
// small to produce a whole fee unit yield 0.
func Fee(amount, feeAsPpm uint64) (calculatedFee uint64) {
	if amount == 0 || feeAsPpm == 0 {
		return 0
	}

	hi, lo := bits.Mul64(amount, feeAsPpm)
	calculatedFee, _ = bits.Div64(hi, lo, OneMillion)
	return
}

// SplitByShare divides a total into a share part and its remainder given the
// share expressed in parts per million. The remainder is computed by
// subtraction so that share + remainder always equals the total exactly.
func SplitByShare(total, shareAsPpm uint64) (share, remainder uint64) {
	share = Fee(total, shareAsPpm)
	remainder = total - share
	return
}
