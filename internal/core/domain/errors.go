package domain

import "errors"

var (
	// ErrPolicyInvalidTotalFee is thrown when the total fee rate exceeds the
	// parts-per-million denominator.
	ErrPolicyInvalidTotalFee = errors.New("total fee must be expressed in parts per million")
	// ErrPolicyInvalidStrategyShare is thrown when the strategy share rate
	// exceeds the parts-per-million denominator.
	ErrPolicyInvalidStrategyShare = errors.New("strategy share must be expressed in parts per million")

	// ErrConfigMissingSettlementAsset ...
	ErrConfigMissingSettlementAsset = errors.New("settlement asset must not be null")
	// ErrConfigInvalidDeveloperAddress ...
	ErrConfigInvalidDeveloperAddress = errors.New("developer address must not be null")
	// ErrConfigUnauthorized is thrown when the caller of a developer address
	// rotation is not the current holder.
	ErrConfigUnauthorized = errors.New("only the current developer can rotate the developer address")
	// ErrConfigNotFound ...
	ErrConfigNotFound = errors.New("fee config not found")

	// ErrTradeInvalidAssetPair ...
	ErrTradeInvalidAssetPair = errors.New("trade assets must be a pair of distinct non-null assets")

	// ErrDistributionUnbalanced is thrown when the strategy and developer
	// amounts of a distribution don't add up to its total.
	ErrDistributionUnbalanced = errors.New("distribution shares must add up to the total amount")
	// ErrDistributionMissingAsset ...
	ErrDistributionMissingAsset = errors.New("distribution assets must not be null")
	// ErrDistributionMissingRecipient ...
	ErrDistributionMissingRecipient = errors.New("distribution developer recipient must not be null")
)
