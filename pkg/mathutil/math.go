package mathutil

import (
	"math/big"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.DivisionPrecision = 8
}

// Div takes two uint64 numbers and divides them x / y and returns the result as decimal.Decimal
func Div(x, y uint64) (z decimal.Decimal) {
	X, Y := decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0), decimal.NewFromBigInt(new(big.Int).SetUint64(y), 0)
	z = X.Div(Y)
	return
}

// LessPercentage returns the amount reduced by the given percentage, rounded
// down to the nearest whole unit.
func LessPercentage(amount uint64, percentage decimal.Decimal) uint64 {
	reduced := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0).
		Mul(decimal.NewFromInt(1).Sub(percentage))
	return reduced.BigInt().Uint64()
}
