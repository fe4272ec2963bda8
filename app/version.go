package app

import (
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../app.Version=...".
var Version = "dev" //nolint:gochecknoglobals

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bsnav version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("bsnav " + Version)
	},
}
