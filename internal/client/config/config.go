package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/gophtodo/internal/cryptox"
	"github.com/dmitrijs2005/gophtodo/internal/flagx"
	"golang.org/x/crypto/bcrypt"
)

// Storage backends understood by the storage package.
const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"
)

// Config holds runtime settings for the todo CLI.
//
// File names are relative to DataDir unless absolute.
type Config struct {
	ConfigFile   string
	DataDir      string
	Storage      string
	UsersFile    string
	TasksFile    string
	SessionFile  string
	DatabaseFile string
	BcryptCost   int
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.Storage = StorageJSON
	c.UsersFile = "users.json"
	c.TasksFile = "tasks.json"
	c.SessionFile = "session.json"
	c.DatabaseFile = "todo.db"
	c.BcryptCost = bcrypt.DefaultCost
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file named by -c/--config in args (if any). Command-line flags
// are applied later, when the command tree parses them (see BindFlags).
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.ConfigFile = flagx.ConfigFileFlag(args)
	parseFile(cfg)
	return cfg
}

// Load is LoadConfig that reports a config file it cannot read or decode as
// an error instead of panicking.
func Load(args []string) (cfg *Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			cfg, err = nil, fmt.Errorf("config file: %v", r)
		}
	}()
	return LoadConfig(args), nil
}

// Validate checks values that would otherwise fail deep inside the stores.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageJSON, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage %q (want %s or %s)", c.Storage, StorageJSON, StorageSQLite)
	}
	if err := cryptox.ValidateCost(c.BcryptCost); err != nil {
		return err
	}
	if c.DataDir == "" {
		return fmt.Errorf("data dir must not be empty")
	}
	return nil
}

// Path resolves name against DataDir.
func (c *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// UsersPath is the location of the credentials document.
func (c *Config) UsersPath() string { return c.Path(c.UsersFile) }

// TasksPath is the location of the tasks document.
func (c *Config) TasksPath() string { return c.Path(c.TasksFile) }

// SessionPath is the location of the session document.
func (c *Config) SessionPath() string { return c.Path(c.SessionFile) }

// DatabasePath is the location of the SQLite database.
func (c *Config) DatabasePath() string { return c.Path(c.DatabaseFile) }

// DefaultArgs returns the process arguments without the program name.
func DefaultArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}
