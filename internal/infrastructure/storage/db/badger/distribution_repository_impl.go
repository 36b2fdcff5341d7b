package dbbadger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/feesplit/feesplitd/internal/core/domain"
)

// statsKey is the fixed key of the cumulative stats record, kept in the
// same store of the distribution log and updated in the same transaction.
const statsKey = "stats"

// distributionRecord decorates a distribution with the insertion time at
// nanosecond resolution, used to list the log most recent first.
type distributionRecord struct {
	domain.Distribution
	AddedAt int64
}

type distributionRepositoryImpl struct {
	store *badgerhold.Store
}

func newDistributionRepositoryImpl(
	store *badgerhold.Store,
) domain.DistributionRepository {
	return distributionRepositoryImpl{store}
}

func (r distributionRepositoryImpl) AddDistribution(
	_ context.Context, distribution *domain.Distribution,
) error {
	record := distributionRecord{
		Distribution: *distribution,
		AddedAt:      time.Now().UnixNano(),
	}

	tx := r.store.Badger().NewTransaction(true)
	defer tx.Discard()

	if err := r.store.TxInsert(tx, record.Id, &record); err != nil {
		if err == badgerhold.ErrKeyExists {
			return fmt.Errorf("distribution with id %s already exists", record.Id)
		}
		return err
	}

	var stats domain.DistributionStats
	if err := r.store.TxGet(tx, statsKey, &stats); err != nil &&
		err != badgerhold.ErrNotFound {
		return err
	}
	stats.SettlementAsset = distribution.SettlementAsset
	stats.TotalFees += distribution.TotalAmount
	stats.StrategyFees += distribution.StrategyAmount
	stats.DeveloperFees += distribution.DeveloperAmount
	stats.Count++
	if err := r.store.TxUpsert(tx, statsKey, &stats); err != nil {
		return err
	}

	return tx.Commit()
}

func (r distributionRepositoryImpl) GetAllDistributions(
	_ context.Context,
) ([]domain.Distribution, error) {
	records, err := r.getAllRecords()
	if err != nil {
		return nil, err
	}

	list := make([]domain.Distribution, 0, len(records))
	for _, record := range records {
		list = append(list, record.Distribution)
	}
	return list, nil
}

func (r distributionRepositoryImpl) GetAllDistributionsForPage(
	_ context.Context, page domain.Page,
) ([]domain.Distribution, error) {
	records, err := r.getAllRecords()
	if err != nil {
		return nil, err
	}

	offset := page.Offset()
	if offset >= len(records) {
		return []domain.Distribution{}, nil
	}

	limit := offset + page.Size
	if limit > len(records) {
		limit = len(records)
	}

	list := make([]domain.Distribution, 0, page.Size)
	for _, record := range records[offset:limit] {
		list = append(list, record.Distribution)
	}
	return list, nil
}

func (r distributionRepositoryImpl) GetDistributionStats(
	_ context.Context,
) (*domain.DistributionStats, error) {
	var stats domain.DistributionStats
	if err := r.store.Get(statsKey, &stats); err != nil &&
		err != badgerhold.ErrNotFound {
		return nil, err
	}
	return &stats, nil
}

func (r distributionRepositoryImpl) getAllRecords() (
	[]distributionRecord, error,
) {
	var records []distributionRecord
	if err := r.store.Find(&records, nil); err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].AddedAt > records[j].AddedAt
	})
	return records, nil
}
