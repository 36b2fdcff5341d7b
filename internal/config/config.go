package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/spf13/viper"
)

const (
	// HookListeningPortKey is the port where the engine-facing hook interface will listen on
	HookListeningPortKey = "HOOK_LISTENING_PORT"
	// OperatorListeningPortKey is the port where the HTTP Operator interface will listen on
	OperatorListeningPortKey = "OPERATOR_LISTENING_PORT"
	// DatadirKey is the local data directory to store the internal state of daemon
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// PoolEngineAddrKey is the address <host:port> of the settlement API of the pool engine the daemon is attached to
	PoolEngineAddrKey = "POOL_ENGINE_ADDR"
	// TreasuryAddrKey is the address <host:port> of the strategy treasury deposit API
	TreasuryAddrKey = "TREASURY_ADDR"
	// TreasurySecretKey is the shared secret used to authenticate deposits pushed to the treasury, deposits are unauthenticated if not set
	TreasurySecretKey = "TREASURY_SECRET"
	// WalletAddrKey is the address for connecting to the custody wallet
	WalletAddrKey = "WALLET_ADDR"
	// CustodyAccountKey is the name of the engine-side account fees are pulled into
	CustodyAccountKey = "CUSTODY_ACCOUNT"
	// SettlementAssetKey is the asset all collected fees are normalized to before distribution
	SettlementAssetKey = "SETTLEMENT_ASSET"
	// DeveloperAddressKey is the initial developer payout address, used only until a config is found on the datadir
	DeveloperAddressKey = "DEVELOPER_ADDRESS"
	// PriceSlippageKey is the percentage of slippage tolerated when converting fees to the settlement asset
	PriceSlippageKey = "PRICE_SLIPPAGE"
	// EnableProfilerKey enables profiler that can be used to investigate performance issues
	EnableProfilerKey = "ENABLE_PROFILER"
	// StatsIntervalKey defines interval for printing basic daemon statistics
	StatsIntervalKey = "STATS_INTERVAL"
	// DBTypeKey is used to switch database type between those supported
	DBTypeKey = "DB_TYPE"

	DbLocation       = "db"
	ProfilerLocation = "stats"

	// DBBadger and DBInMemory are the database types the daemon can run on.
	DBBadger   = "badger"
	DBInMemory = "inmemory"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("feesplitd", false)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("FEESPLIT")
	vip.AutomaticEnv()

	vip.SetDefault(HookListeningPortKey, 9945)
	vip.SetDefault(OperatorListeningPortKey, 9000)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(CustodyAccountKey, "feesplitd")
	vip.SetDefault(PriceSlippageKey, 0.05)
	vip.SetDefault(EnableProfilerKey, false)
	vip.SetDefault(StatsIntervalKey, 600)
	vip.SetDefault(DBTypeKey, DBBadger)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetFloat(key string) float64 {
	return vip.GetFloat64(key)
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	if !vip.IsSet(PoolEngineAddrKey) {
		return fmt.Errorf("missing pool engine address")
	}
	if !vip.IsSet(TreasuryAddrKey) {
		return fmt.Errorf("missing treasury address")
	}
	if !vip.IsSet(WalletAddrKey) {
		return fmt.Errorf("missing wallet address")
	}
	if !vip.IsSet(SettlementAssetKey) {
		return fmt.Errorf("missing settlement asset")
	}

	slippage := GetFloat(PriceSlippageKey)
	if slippage <= 0 || slippage >= 1 {
		return fmt.Errorf(
			"%s must be a percentage in the (0, 1) range", PriceSlippageKey,
		)
	}

	dbType := GetString(DBTypeKey)
	if dbType != DBBadger && dbType != DBInMemory {
		return fmt.Errorf(
			"%s must be either %s or %s", DBTypeKey, DBBadger, DBInMemory,
		)
	}

	return nil
}

func initDatadir() error {
	datadir := GetDatadir()
	if err := makeDirectoryIfNotExists(filepath.Join(datadir, DbLocation)); err != nil {
		return err
	}

	profilerEnabled := GetBool(EnableProfilerKey)
	if profilerEnabled {
		if err := makeDirectoryIfNotExists(filepath.Join(datadir, ProfilerLocation)); err != nil {
			return err
		}
	}

	return nil
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
