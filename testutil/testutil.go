package testutil

import (
	"io/ioutil"

	"github.com/make-os/dao/config"
	"github.com/make-os/dao/pkgs/logger"
	"github.com/make-os/dao/storage"
	"github.com/spf13/viper"
)

// Governance parameters used by tests
const (
	GovAsset = "gov"
	PayAsset = "pay"
	Quorum   = "500000"
	Treasury = "0x00000000000000000000000000000000000da0da"
)

// SetTestCfg prepares a config and a temporary data directory for tests.
// Callers should remove cfg.DataDir() when done.
func SetTestCfg() (*config.AppConfig, error) {
	dataDir, err := ioutil.TempDir("", "dao-test-")
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.Set("home", dataDir)
	v.Set("no-log", true)
	v.Set("gov.govAsset", GovAsset)
	v.Set("gov.payAsset", PayAsset)
	v.Set("gov.quorum", Quorum)
	v.Set("gov.treasury", Treasury)

	var cfg = config.EmptyAppConfig()
	if err = config.Configure(v, cfg); err != nil {
		return nil, err
	}
	cfg.Node.Mode = config.ModeTest

	// Replace logger with Noop logger
	cfg.G().Log = logger.NewLogrusNoOp()

	return cfg, nil
}

// GetDB opens the test database in the config's data directory
func GetDB(cfg *config.AppConfig) *storage.Badger {
	db := storage.NewBadger()
	if err := db.Init(cfg.GetDBDir()); err != nil {
		panic(err)
	}
	return db
}
