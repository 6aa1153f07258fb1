package config

import (
	"path/filepath"

	"github.com/make-os/dao/pkgs/logger"
	"github.com/olebedev/emitter"
)

const (
	// ModeProd refers to production mode
	ModeProd = iota + 1
	// ModeDev refers to development mode
	ModeDev
	// ModeTest refers to test mode
	ModeTest
)

// NodeConfig represents the process configuration
type NodeConfig struct {

	// Mode determines the current environment type
	Mode int `json:"mode" mapstructure:"mode"`

	// LogLevel sets the log level of modules, e.g "[dao=5,storage=2]"
	LogLevel string `json:"loglevel" mapstructure:"loglevel"`

	// NoLog sets the log level to error
	NoLog bool `json:"nolog" mapstructure:"nolog"`
}

// GovConfig describes the governance parameters
type GovConfig struct {

	// GovAsset is the asset whose balance is the voting weight
	GovAsset string `json:"govAsset" mapstructure:"govAsset"`

	// PayAsset is the asset disbursed to approved proposals
	PayAsset string `json:"payAsset" mapstructure:"payAsset"`

	// Quorum is the weight that up or down votes must exceed
	Quorum string `json:"quorum" mapstructure:"quorum"`

	// Treasury is the principal holding the disbursable funds
	Treasury string `json:"treasury" mapstructure:"treasury"`
}

// AppConfig represents the applications configuration
type AppConfig struct {

	// Node holds the process configurations
	Node *NodeConfig `json:"node" mapstructure:"node"`

	// Gov holds the governance configurations
	Gov *GovConfig `json:"gov" mapstructure:"gov"`

	// dataDir is where the config and database are stored
	dataDir string

	// g stores references to global objects that can be
	// used anywhere a config is required.
	g *Globals
}

// EmptyAppConfig returns an empty Config Object
func EmptyAppConfig() *AppConfig {
	return &AppConfig{
		Node: &NodeConfig{},
		Gov:  &GovConfig{},
		g: &Globals{
			Log: logger.NewLogrusNoOp(),
			Bus: emitter.New(0),
		},
	}
}

// GetAppName returns the app's name
func (c *AppConfig) GetAppName() string {
	return AppName
}

// DataDir returns the application's data directory
func (c *AppConfig) DataDir() string {
	return c.dataDir
}

// SetDataDir sets the application's data directory
func (c *AppConfig) SetDataDir(d string) {
	c.dataDir = d
}

// GetDBDir returns the directory where the database files are stored.
// An empty data directory means the database is kept in memory.
func (c *AppConfig) GetDBDir() string {
	if c.dataDir == "" {
		return ""
	}
	return filepath.Join(c.dataDir, "data")
}

// IsDev checks whether the app is running in development mode
func (c *AppConfig) IsDev() bool {
	return c.Node.Mode == ModeDev
}
