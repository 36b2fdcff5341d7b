package operator

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/feesplit/feesplitd/internal/core/application/pubsub"
	"github.com/feesplit/feesplitd/internal/core/domain"
	"github.com/feesplit/feesplitd/internal/core/ports"
)

// Service is the operator-facing application service, exposing the info,
// maintenance and webhook operations served by the operator interface.
type Service interface {
	GetInfo(ctx context.Context) (ports.ServiceInfo, error)
	UpdateDeveloperAddress(ctx context.Context, caller, newAddress string) error
	GetCustodyBalance(ctx context.Context, asset string) (uint64, error)
	ListDistributions(
		ctx context.Context, page ports.Page,
	) ([]ports.DistributionInfo, error)
	GetDistributionStats(ctx context.Context) (ports.DistributionStatsInfo, error)
	AddWebhook(ctx context.Context, hook ports.Webhook) (string, error)
	RemoveWebhook(ctx context.Context, id string) error
	ListWebhooks(ctx context.Context, event string) ([]ports.WebhookInfo, error)
}

type service struct {
	wallet      ports.WalletService
	pubsub      *pubsub.Service
	repoManager ports.RepoManager

	policy             domain.FeePolicy
	custodyAccount     string
	poolEngineEndpoint string
	treasuryEndpoint   string
	buildData          ports.BuildData
}

func NewService(
	wallet ports.WalletService, pubsubSvc *pubsub.Service,
	repoManager ports.RepoManager, policy domain.FeePolicy,
	custodyAccount, poolEngineEndpoint, treasuryEndpoint string,
	buildData ports.BuildData,
) (Service, error) {
	if wallet == nil {
		return nil, fmt.Errorf("missing wallet service")
	}
	if pubsubSvc == nil {
		return nil, fmt.Errorf("missing pubsub service")
	}
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	if custodyAccount == "" {
		return nil, fmt.Errorf("missing custody account")
	}

	return &service{
		wallet, pubsubSvc, repoManager, policy,
		custodyAccount, poolEngineEndpoint, treasuryEndpoint, buildData,
	}, nil
}

func (s *service) GetInfo(ctx context.Context) (ports.ServiceInfo, error) {
	config, err := s.repoManager.FeeConfigRepository().GetFeeConfig(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to fetch fee config")
		return nil, err
	}

	return serviceInfo{
		config:             *config,
		policy:             s.policy,
		custodyAccount:     s.custodyAccount,
		poolEngineEndpoint: s.poolEngineEndpoint,
		treasuryEndpoint:   s.treasuryEndpoint,
		buildData:          s.buildData,
	}, nil
}

// UpdateDeveloperAddress rotates the developer payout address. The rotation
// is self-sovereign, only the current holder can hand the role over, and
// moves no funds.
func (s *service) UpdateDeveloperAddress(
	ctx context.Context, caller, newAddress string,
) error {
	var oldAddress string
	if err := s.repoManager.FeeConfigRepository().UpdateFeeConfig(
		ctx, func(c *domain.FeeConfig) (*domain.FeeConfig, error) {
			oldAddress = c.DeveloperAddress
			if err := c.UpdateDeveloperAddress(caller, newAddress); err != nil {
				return nil, err
			}
			return c, nil
		},
	); err != nil {
		log.WithError(err).Warn("failed to update developer address")
		return err
	}

	go func() {
		if err := s.pubsub.PublishDeveloperAddressUpdatedEvent(
			oldAddress, newAddress,
		); err != nil {
			log.WithError(err).Warn(
				"pubsub: failed to publish topic for developer address update",
			)
		} else {
			log.Debugf("pubsub: published topic for developer address update")
		}
	}()

	log.Debugf(
		"developer address rotated from %s to %s", oldAddress, newAddress,
	)
	return nil
}

// GetCustodyBalance returns the custody wallet balance of the given asset,
// defaulting to the settlement asset when none is given.
func (s *service) GetCustodyBalance(
	ctx context.Context, asset string,
) (uint64, error) {
	if asset == "" {
		config, err := s.repoManager.FeeConfigRepository().GetFeeConfig(ctx)
		if err != nil {
			return 0, err
		}
		asset = config.SettlementAsset
	}
	return s.wallet.GetBalance(ctx, asset)
}
