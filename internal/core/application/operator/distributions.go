package operator

import (
	"context"

	"github.com/feesplit/feesplitd/internal/core/domain"
	"github.com/feesplit/feesplitd/internal/core/ports"
)

func (s *service) ListDistributions(
	ctx context.Context, page ports.Page,
) ([]ports.DistributionInfo, error) {
	repo := s.repoManager.DistributionRepository()

	if page == nil {
		distributions, err := repo.GetAllDistributions(ctx)
		if err != nil {
			return nil, err
		}
		return distributionList(distributions).toPortableList(), nil
	}

	pg := domain.NewPage(int(page.GetNumber()), int(page.GetSize()))
	distributions, err := repo.GetAllDistributionsForPage(ctx, pg)
	if err != nil {
		return nil, err
	}
	return distributionList(distributions).toPortableList(), nil
}

func (s *service) GetDistributionStats(
	ctx context.Context,
) (ports.DistributionStatsInfo, error) {
	stats, err := s.repoManager.DistributionRepository().GetDistributionStats(
		ctx,
	)
	if err != nil {
		return nil, err
	}
	return statsInfo(*stats), nil
}
