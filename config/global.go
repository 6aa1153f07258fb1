package config

import (
	"github.com/make-os/dao/pkgs/logger"
	"github.com/olebedev/emitter"
)

// Globals holds references to global objects
type Globals struct {
	Log logger.Logger
	Bus *emitter.Emitter
}

// G returns the global object
func (c *AppConfig) G() *Globals {
	return c.g
}

var appCfg = EmptyAppConfig()

// GetConfig returns the process-wide application config.
// It is populated by Configure.
func GetConfig() *AppConfig {
	return appCfg
}
