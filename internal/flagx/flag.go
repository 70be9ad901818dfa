// Package flagx pre-scans command-line arguments for the few flags that must
// be known before the command tree is built (the config file location).
package flagx

import (
	"io"

	"github.com/spf13/pflag"
)

// ConfigFileFlag extracts the config file path given via -c or --config.
// Unknown flags, their values and subcommand names are skipped; the last
// occurrence wins. Returns "" when no config file was requested.
func ConfigFileFlag(args []string) string {
	var config string

	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.ParseErrorsWhitelist = pflag.ParseErrorsWhitelist{UnknownFlags: true}
	fs.StringVarP(&config, "config", "c", "", "path to config file")
	_ = fs.Parse(args)

	return config
}
