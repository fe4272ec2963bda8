// Package app implements the bsnav commands.
package app

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/go-bsnav/internal/config"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		config.DefaultPath,
		"Directory holding main.toml",
	)
}

var (
	configPath string // Directory holding the configuration file

	rootCmd = &cobra.Command{
		Use:   "bsnav",
		Short: "bsnav renders Bootstrap 5 navigation bars",
		Long: `bsnav renders Bootstrap 5 navigation bars described in a TOML file,
either as a bare html fragment or served by a preview web server.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// readConfig loads main.toml from the --config directory.
func readConfig() (config.Config, error) {
	path := configPath
	if path != "" && !strings.HasSuffix(path, string(filepath.Separator)) {
		path += string(filepath.Separator)
	}

	return config.ReadConfig(path)
}
