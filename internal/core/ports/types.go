package ports

type Market interface {
	GetBaseAsset() string
	GetQuoteAsset() string
}

type TradeReport interface {
	Market
	GetBaseDelta() int64
	GetQuoteDelta() int64
	IsBaseAssetIn() bool
}

type FeePolicyInfo interface {
	GetTotalFeePpm() uint64
	GetStrategySharePpm() uint64
	GetDeveloperSharePpm() uint64
}

type FeeConfigInfo interface {
	GetSettlementAsset() string
	GetDeveloperAddress() string
}

type ServiceInfo interface {
	GetFeePolicy() FeePolicyInfo
	GetFeeConfig() FeeConfigInfo
	GetCustodyAccount() string
	GetPoolEngineEndpoint() string
	GetTreasuryEndpoint() string
	GetBuildData() BuildData
}

type DistributionInfo interface {
	GetId() string
	GetFeeAsset() string
	GetFeeAmount() uint64
	GetSettlementAsset() string
	GetTotalAmount() uint64
	GetStrategyAmount() uint64
	GetDeveloperAmount() uint64
	GetDeveloperAddress() string
	GetConversionPrice() string
	GetTimestamp() int64
}

type DistributionStatsInfo interface {
	GetSettlementAsset() string
	GetTotalFees() uint64
	GetStrategyFees() uint64
	GetDeveloperFees() uint64
	GetCount() uint64
}

type Page interface {
	GetNumber() int64
	GetSize() int64
}

type Webhook interface {
	GetEvent() string
	GetEndpoint() string
	GetSecret() string
}

type WebhookInfo interface {
	GetId() string
	GetEvent() string
	GetEndpoint() string
	IsSecured() bool
}

type BuildData interface {
	GetVersion() string
	GetCommit() string
	GetDate() string
}
