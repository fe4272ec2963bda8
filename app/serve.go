package app

import (
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/go-bsnav/internal/config"
	"github.com/GoPowerDNS-Admin/go-bsnav/internal/daemon"
)

func init() { //nolint: gochecknoinits
	serveCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode, templates are reloaded from disk")

	rootCmd.AddCommand(serveCmd)
}

var (
	cfg     config.Config
	devMode bool

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the navbar preview web server",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if cfg, err = readConfig(); err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return d.Start()
		},
	}
)
