package dbbadger

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"

	"github.com/feesplit/feesplitd/internal/core/domain"
	"github.com/feesplit/feesplitd/internal/core/ports"
)

type repoManager struct {
	configStore       *badgerhold.Store
	distributionStore *badgerhold.Store

	feeConfigRepository    domain.FeeConfigRepository
	distributionRepository domain.DistributionRepository
}

// NewRepoManager opens (or creates if not existing) the badger stores on
// disk, one dedicated directory for the fee config and one for the
// distribution log. An empty base dir makes all stores volatile in-memory
// ones, useful for testing purposes.
func NewRepoManager(
	baseDbDir string, logger badger.Logger,
) (ports.RepoManager, error) {
	var configDir, distributionsDir string
	if len(baseDbDir) > 0 {
		configDir = filepath.Join(baseDbDir, "config")
		distributionsDir = filepath.Join(baseDbDir, "distributions")
	}

	configStore, err := createDb(configDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening fee config db: %w", err)
	}
	distributionStore, err := createDb(distributionsDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening distributions db: %w", err)
	}

	return &repoManager{
		configStore:            configStore,
		distributionStore:      distributionStore,
		feeConfigRepository:    newFeeConfigRepositoryImpl(configStore),
		distributionRepository: newDistributionRepositoryImpl(distributionStore),
	}, nil
}

func (d *repoManager) FeeConfigRepository() domain.FeeConfigRepository {
	return d.feeConfigRepository
}

func (d *repoManager) DistributionRepository() domain.DistributionRepository {
	return d.distributionRepository
}

func (d *repoManager) Close() {
	// nolint
	d.configStore.Close()
	// nolint
	d.distributionStore.Close()
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, err
	}

	if !isInMemory {
		ticker := time.NewTicker(30 * time.Minute)

		go func() {
			for {
				<-ticker.C
				if err := db.Badger().RunValueLogGC(0.5); err != nil &&
					err != badger.ErrNoRewrite {
					log.Error(err)
				}
			}
		}()
	}

	return db, nil
}
