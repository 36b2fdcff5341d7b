package operator

import (
	"github.com/feesplit/feesplitd/internal/core/domain"
	"github.com/feesplit/feesplitd/internal/core/ports"
	"github.com/feesplit/feesplitd/pkg/mathutil"
)

// Internal types implementing the portable info interfaces returned to the
// interface layer.

type serviceInfo struct {
	config             domain.FeeConfig
	policy             domain.FeePolicy
	custodyAccount     string
	poolEngineEndpoint string
	treasuryEndpoint   string
	buildData          ports.BuildData
}

func (i serviceInfo) GetFeePolicy() ports.FeePolicyInfo {
	return feePolicyInfo(i.policy)
}
func (i serviceInfo) GetFeeConfig() ports.FeeConfigInfo {
	return feeConfigInfo(i.config)
}
func (i serviceInfo) GetCustodyAccount() string {
	return i.custodyAccount
}
func (i serviceInfo) GetPoolEngineEndpoint() string {
	return i.poolEngineEndpoint
}
func (i serviceInfo) GetTreasuryEndpoint() string {
	return i.treasuryEndpoint
}
func (i serviceInfo) GetBuildData() ports.BuildData {
	return i.buildData
}

type feePolicyInfo domain.FeePolicy

func (i feePolicyInfo) GetTotalFeePpm() uint64 {
	return i.TotalFeePpm
}
func (i feePolicyInfo) GetStrategySharePpm() uint64 {
	return i.StrategySharePpm
}
func (i feePolicyInfo) GetDeveloperSharePpm() uint64 {
	return mathutil.OneMillion - i.StrategySharePpm
}

type feeConfigInfo domain.FeeConfig

func (i feeConfigInfo) GetSettlementAsset() string {
	return i.SettlementAsset
}
func (i feeConfigInfo) GetDeveloperAddress() string {
	return i.DeveloperAddress
}

type distributionInfo domain.Distribution

func (i distributionInfo) GetId() string {
	return i.Id
}
func (i distributionInfo) GetFeeAsset() string {
	return i.FeeAsset
}
func (i distributionInfo) GetFeeAmount() uint64 {
	return i.FeeAmount
}
func (i distributionInfo) GetSettlementAsset() string {
	return i.SettlementAsset
}
func (i distributionInfo) GetTotalAmount() uint64 {
	return i.TotalAmount
}
func (i distributionInfo) GetStrategyAmount() uint64 {
	return i.StrategyAmount
}
func (i distributionInfo) GetDeveloperAmount() uint64 {
	return i.DeveloperAmount
}
func (i distributionInfo) GetDeveloperAddress() string {
	return i.DeveloperAddress
}
func (i distributionInfo) GetConversionPrice() string {
	return i.ConversionPrice
}
func (i distributionInfo) GetTimestamp() int64 {
	return i.Timestamp
}

type distributionList []domain.Distribution

func (l distributionList) toPortableList() []ports.DistributionInfo {
	list := make([]ports.DistributionInfo, 0, len(l))
	for _, d := range l {
		list = append(list, distributionInfo(d))
	}
	return list
}

type statsInfo domain.DistributionStats

func (i statsInfo) GetSettlementAsset() string {
	return i.SettlementAsset
}
func (i statsInfo) GetTotalFees() uint64 {
	return i.TotalFees
}
func (i statsInfo) GetStrategyFees() uint64 {
	return i.StrategyFees
}
func (i statsInfo) GetDeveloperFees() uint64 {
	return i.DeveloperFees
}
func (i statsInfo) GetCount() uint64 {
	return i.Count
}
