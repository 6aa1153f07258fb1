package config

import (
	"os"
	path "path/filepath"
	"strings"

	"github.com/make-os/dao/params"
	"github.com/make-os/dao/pkgs/logger"
	"github.com/make-os/dao/util"
	"github.com/mitchellh/go-homedir"
	"github.com/olebedev/emitter"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var (
	// AppName is the name of the application
	AppName = "dao"

	// DefaultDataDir is the path to the data directory
	DefaultDataDir = mustExpand("~/." + AppName)

	// DefaultDevDataDir is the path to the data directory in development mode
	DefaultDevDataDir = mustExpand("~/." + AppName + "_dev")

	// AppEnvPrefix is used as the prefix for environment variables
	AppEnvPrefix = AppName

	// NoColorFormatting indicates that stdout/stderr output should have no color
	NoColorFormatting = false
)

func mustExpand(p string) string {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return os.ExpandEnv("$HOME/" + strings.TrimPrefix(p, "~/"))
	}
	return expanded
}

// setDefaultViperConfig sets default viper config values.
func setDefaultViperConfig(v *viper.Viper) {
	v.SetDefault("node.mode", ModeProd)
	v.SetDefault("gov.govAsset", params.DefaultGovAsset)
	v.SetDefault("gov.payAsset", params.DefaultPayAsset)
	v.SetDefault("gov.quorum", params.DefaultQuorum)
	v.SetDefault("gov.treasury", params.DefaultTreasury)
}

// Configure reads the config file and environment into cfg, creates the
// data directory and prepares the global objects.
// v is the viper instance the CLI flags were bound to.
func Configure(v *viper.Viper, cfg *AppConfig) error {

	NoColorFormatting = v.GetBool("no-colors")

	// Populate viper from environment variables
	v.SetEnvPrefix(AppEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c = EmptyAppConfig()
	dataDir := v.GetString("home")
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	// In development mode, use the development data directory.
	devMode := v.GetBool("dev")
	if devMode {
		dataDir = DefaultDevDataDir
		if prefix := v.GetString("home.prefix"); prefix != "" {
			dataDir = dataDir + "_" + prefix
		}
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return errors.Wrap(err, "failed to create data directory")
	}

	setDefaultViperConfig(v)
	v.SetConfigName(AppName)
	v.AddConfigPath(dataDir)

	// Create the config file if it does not exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			v.SetConfigType("yaml")
			if err = v.WriteConfigAs(path.Join(dataDir, AppName+".yml")); err != nil {
				return errors.Wrap(err, "failed to create config file")
			}
		} else {
			return errors.Wrap(err, "failed to read config file")
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return errors.Wrap(err, "failed to unmarshal configuration file")
	}

	if devMode {
		c.Node.Mode = ModeDev
	}
	c.dataDir = dataDir

	// Create logger with file rotation enabled
	logPath := path.Join(dataDir, "logs")
	if err := os.MkdirAll(logPath, 0700); err != nil {
		return errors.Wrap(err, "failed to create log directory")
	}
	c.G().Log = logger.NewLogrusWithFileRotation(path.Join(logPath, "main.log"))
	c.G().Log.SetToInfo()

	if devMode {
		c.G().Log.SetToDebug()
	}

	if lvl, ok := util.ParseLogLevel(v.GetString("loglevel"))["dao"]; ok {
		switch {
		case lvl >= 5:
			c.G().Log.SetToDebug()
		case lvl >= 4:
			c.G().Log.SetToInfo()
		default:
			c.G().Log.SetToError()
		}
	}

	// If no logger is wanted, set the log level to `error`
	if v.GetBool("no-log") || c.Node.NoLog {
		c.G().Log.SetToError()
	}

	c.G().Bus = emitter.New(params.EventBusCapacity)
	*cfg = *c

	return nil
}
