package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/feesplit/feesplitd/internal/config"
	"github.com/feesplit/feesplitd/internal/core/application/operator"
	"github.com/feesplit/feesplitd/internal/core/application/processor"
	"github.com/feesplit/feesplitd/internal/core/application/pubsub"
	"github.com/feesplit/feesplitd/internal/core/domain"
	"github.com/feesplit/feesplitd/internal/core/ports"
	"github.com/feesplit/feesplitd/internal/infrastructure/poolengine"
	webhookpubsub "github.com/feesplit/feesplitd/internal/infrastructure/pubsub"
	dbbadger "github.com/feesplit/feesplitd/internal/infrastructure/storage/db/badger"
	"github.com/feesplit/feesplitd/internal/infrastructure/storage/db/inmemory"
	"github.com/feesplit/feesplitd/internal/infrastructure/treasury"
	"github.com/feesplit/feesplitd/internal/infrastructure/wallet"
	httpinterface "github.com/feesplit/feesplitd/internal/interfaces/http"
	"github.com/feesplit/feesplitd/pkg/stats"
)

var (
	// version is set at build-time through ldflags.
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	log.Infof("version: %s", version)
	log.Infof("commit: %s", commit)
	log.Infof("date: %s", date)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if config.GetBool(config.EnableProfilerKey) {
		interval := time.Duration(config.GetInt(config.StatsIntervalKey)) * time.Second
		profilerDir := filepath.Join(config.GetDatadir(), config.ProfilerLocation)
		stats.EnableMemoryStatistics(ctx, interval, profilerDir)
	}

	dbDir := filepath.Join(config.GetDatadir(), config.DbLocation)
	var repoManager ports.RepoManager
	switch config.GetString(config.DBTypeKey) {
	case config.DBBadger:
		var err error
		repoManager, err = dbbadger.NewRepoManager(dbDir, log.New())
		if err != nil {
			log.WithError(err).Fatal("failed to open db")
		}
	default:
		repoManager = inmemory.NewRepoManager()
		dbDir = ""
	}
	defer repoManager.Close()

	securePubSub, err := webhookpubsub.NewService(dbDir, log.New())
	if err != nil {
		log.WithError(err).Fatal("failed to open webhook store")
	}
	pubsubSvc := pubsub.NewService(securePubSub)
	if err := pubsubSvc.SecurePubSub().Store().Init(); err != nil {
		log.WithError(err).Fatal("failed to initialize webhook store")
	}
	defer pubsubSvc.Close()

	engineSvc, err := poolengine.NewService(
		config.GetString(config.PoolEngineAddrKey),
	)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to pool engine")
	}
	treasurySvc, err := treasury.NewService(
		config.GetString(config.TreasuryAddrKey),
		config.GetString(config.TreasurySecretKey),
	)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to treasury")
	}
	walletSvc, err := wallet.NewService(config.GetString(config.WalletAddrKey))
	if err != nil {
		log.WithError(err).Fatal("failed to connect to wallet")
	}
	defer walletSvc.Close()

	if err := initFeeConfig(ctx, repoManager); err != nil {
		log.WithError(err).Fatal("failed to initialize fee config")
	}

	policy := domain.DefaultFeePolicy()
	custodyAccount := config.GetString(config.CustodyAccountKey)
	priceSlippage := decimal.NewFromFloat(config.GetFloat(config.PriceSlippageKey))

	processorSvc, err := processor.NewService(
		engineSvc, treasurySvc, walletSvc, pubsubSvc, repoManager,
		*policy, custodyAccount, priceSlippage,
	)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize processor service")
	}
	operatorSvc, err := operator.NewService(
		walletSvc, pubsubSvc, repoManager, *policy, custodyAccount,
		config.GetString(config.PoolEngineAddrKey),
		config.GetString(config.TreasuryAddrKey),
		buildData{version, commit, date},
	)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize operator service")
	}

	hookAddress := fmt.Sprintf(":%d", config.GetInt(config.HookListeningPortKey))
	operatorAddress := fmt.Sprintf(":%d", config.GetInt(config.OperatorListeningPortKey))

	svc, err := httpinterface.NewService(httpinterface.ServiceOpts{
		HookAddress:     hookAddress,
		OperatorAddress: operatorAddress,
		ProcessorSvc:    processorSvc,
		OperatorSvc:     operatorSvc,
		PubSubSvc:       pubsubSvc,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to initialize interfaces")
	}

	log.Debug("starting daemon")

	if err := svc.Start(); err != nil {
		log.WithError(err).Fatal("error starting interfaces")
	}
	defer svc.Stop()

	log.Infof("hook interface is listening on %s", hookAddress)
	log.Infof("operator interface is listening on %s", operatorAddress)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	log.Debug("exiting")
}

// initFeeConfig seeds the fee config from the environment on the very first
// boot. Once stored, the config on the datadir is the source of truth and
// the environment values are ignored.
func initFeeConfig(ctx context.Context, repoManager ports.RepoManager) error {
	_, err := repoManager.FeeConfigRepository().GetFeeConfig(ctx)
	if err == nil {
		return nil
	}
	if err != domain.ErrConfigNotFound {
		return err
	}

	feeConfig, err := domain.NewFeeConfig(
		config.GetString(config.SettlementAssetKey),
		config.GetString(config.DeveloperAddressKey),
	)
	if err != nil {
		return err
	}
	if err := repoManager.FeeConfigRepository().AddFeeConfig(
		ctx, *feeConfig,
	); err != nil {
		return err
	}

	log.Infof(
		"initialized fee config with developer address %s",
		feeConfig.DeveloperAddress,
	)
	return nil
}

type buildData struct {
	version string
	commit  string
	date    string
}

func (d buildData) GetVersion() string { return d.version }
func (d buildData) GetCommit() string  { return d.commit }
func (d buildData) GetDate() string    { return d.date }
