package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for decoding the config file. YAML is
// a superset of JSON, so both formats are accepted. Zero values leave the
// current setting untouched.
type FileConfig struct {
	DataDir      string `yaml:"data_dir"`
	Storage      string `yaml:"storage"`
	UsersFile    string `yaml:"users_file"`
	TasksFile    string `yaml:"tasks_file"`
	SessionFile  string `yaml:"session_file"`
	DatabaseFile string `yaml:"database_file"`
	BcryptCost   int    `yaml:"bcrypt_cost"`
	LogLevel     string `yaml:"log_level"`
}

// parseFile overlays cfg with values loaded from cfg.ConfigFile.
//
// An empty ConfigFile is a no-op. Read or decode errors panic; a config file
// that was asked for but cannot be used is a startup failure.
func parseFile(cfg *Config) {
	if cfg.ConfigFile == "" {
		return
	}

	data, err := os.ReadFile(cfg.ConfigFile)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		panic(err)
	}

	overlay(&cfg.DataDir, fc.DataDir)
	overlay(&cfg.Storage, fc.Storage)
	overlay(&cfg.UsersFile, fc.UsersFile)
	overlay(&cfg.TasksFile, fc.TasksFile)
	overlay(&cfg.SessionFile, fc.SessionFile)
	overlay(&cfg.DatabaseFile, fc.DatabaseFile)
	overlay(&cfg.LogLevel, fc.LogLevel)
	if fc.BcryptCost != 0 {
		cfg.BcryptCost = fc.BcryptCost
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
