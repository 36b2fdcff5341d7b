package domain

// TradeContext describes the settled outcome of a single pool trade as
// reported by the pool engine: the asset pair, the settled delta of each
// side from the pool's perspective (positive for funds entering the pool,
// negative for funds leaving it) and which side the trader fixed as exact
// input.
type TradeContext struct {
	BaseAsset   string
	QuoteAsset  string
	BaseDelta   int64
	QuoteDelta  int64
	BaseAssetIn bool
}

// NewTradeContext returns a new trade context with the pair and settled
// deltas set, validating that the pair is made of distinct non-null assets.
func NewTradeContext(
	baseAsset, quoteAsset string, baseDelta, quoteDelta int64, baseAssetIn bool,
) (*TradeContext, error) {
	if baseAsset == "" || quoteAsset == "" || baseAsset == quoteAsset {
		return nil, ErrTradeInvalidAssetPair
	}

	return &TradeContext{
		BaseAsset:   baseAsset,
		QuoteAsset:  quoteAsset,
		BaseDelta:   baseDelta,
		QuoteDelta:  quoteDelta,
		BaseAssetIn: baseAssetIn,
	}, nil
}

// FeeAsset returns the asset the protocol fee is charged in, that is the
// side of the pair the trader did not fix as exact input.
func (t TradeContext) FeeAsset() string {
	if t.BaseAssetIn {
		return t.QuoteAsset
	}
	return t.BaseAsset
}

// FeeBase returns the settled amount the fee is calculated on, the absolute
// delta of the fee asset side.
func (t TradeContext) FeeBase() uint64 {
	delta := t.QuoteDelta
	if !t.BaseAssetIn {
		delta = t.BaseDelta
	}
	if delta < 0 {
		delta = -delta
	}
	return uint64(delta)
}

// PendingFee is fee custody pulled from the pool for a single trade and not
// yet distributed.
type PendingFee struct {
	Asset  string
	Amount uint64
}

// IsZero returns whether there is nothing to distribute.
func (f PendingFee) IsZero() bool {
	return f.Amount == 0
}
