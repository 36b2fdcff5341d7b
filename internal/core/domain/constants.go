package domain

const (
	// DefaultTotalFeePpm is the default protocol fee charged on the settled
	// amount of every trade, expressed in parts per million (10%).
	DefaultTotalFeePpm = 100_000
	// DefaultStrategySharePpm is the default portion of the collected fee
	// routed to the strategy treasury, expressed in parts per million (90%).
	// The remainder goes to the developer.
	DefaultStrategySharePpm = 900_000
)
