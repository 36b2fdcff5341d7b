package domain

// FeeConfig is the single mutable configuration slot of the module. It holds
// the reference asset every fee is normalized to before distribution and the
// current developer payout address.
type FeeConfig struct {
	// SettlementAsset is the asset fees are normalized to, fixed at
	// initialization.
	SettlementAsset string
	// DeveloperAddress is the current recipient of the developer share.
	DeveloperAddress string
}

// NewFeeConfig returns a new config with the given settlement asset and
// initial developer address set.
func NewFeeConfig(settlementAsset, developerAddress string) (*FeeConfig, error) {
	if settlementAsset == "" {
		return nil, ErrConfigMissingSettlementAsset
	}
	if developerAddress == "" {
		return nil, ErrConfigInvalidDeveloperAddress
	}

	return &FeeConfig{
		SettlementAsset:  settlementAsset,
		DeveloperAddress: developerAddress,
	}, nil
}

// UpdateDeveloperAddress rotates the developer payout address. Only the
// current holder is allowed to hand the role over, and never to a null
// address.
func (c *FeeConfig) UpdateDeveloperAddress(caller, newAddress string) error {
	if caller != c.DeveloperAddress {
		return ErrConfigUnauthorized
	}
	if newAddress == "" {
		return ErrConfigInvalidDeveloperAddress
	}

	c.DeveloperAddress = newAddress
	return nil
}
