package processor

// conversionPair is the market the pending fee is converted on: the
// settlement asset is always the base side, the fee asset the quote one.
type conversionPair struct {
	baseAsset  string
	quoteAsset string
}

func (p conversionPair) GetBaseAsset() string {
	return p.baseAsset
}
func (p conversionPair) GetQuoteAsset() string {
	return p.quoteAsset
}
