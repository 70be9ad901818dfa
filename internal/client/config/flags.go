package config

import "github.com/spf13/pflag"

// BindFlags registers the global flags on fs, using the current cfg values
// as defaults so that flags override the config file.
//
//	-c, --config string      path to config file (YAML or JSON)
//	-d, --data-dir string    directory holding users, tasks and session data
//	    --storage string     json or sqlite
//	    --bcrypt-cost int    bcrypt work factor for new passwords
//	    --log-level string   debug, info, warn or error
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.ConfigFile, "config", "c", cfg.ConfigFile, "path to config file (YAML or JSON)")
	fs.StringVarP(&cfg.DataDir, "data-dir", "d", cfg.DataDir, "directory holding users, tasks and session data")
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend: json or sqlite")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt work factor for new passwords")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
}
