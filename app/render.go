package app

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/go-bsnav/navbar"
)

func init() { //nolint: gochecknoinits
	renderCmd.Flags().StringVar(&activePath, "path", "", "Active path, overrides the one from the config file")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the fragment to this file instead of stdout")

	rootCmd.AddCommand(renderCmd)
}

var (
	activePath string
	outFile    string

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Print the navbar html fragment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := readConfig()
			if err != nil {
				return err
			}

			// diagnostics go to stderr, stdout carries the markup only
			diag := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
				With().
				Timestamp().
				Logger()

			// positional dropdown ids keep the output identical between runs
			nav := c.Navbar.Build(navbar.WithLogger(diag), navbar.WithPositionalIDs())
			if cmd.Flags().Changed("path") {
				nav.SetActivePath(activePath)
			}

			return writeFragment(cmd.OutOrStdout(), nav)
		},
	}
)

func writeFragment(stdout io.Writer, nav *navbar.Renderer) error {
	if outFile == "" {
		if _, err := nav.WriteTo(stdout); err != nil {
			return errors.Wrap(err, "can't write navbar")
		}

		_, err := io.WriteString(stdout, "\n")

		return err //nolint:wrapcheck
	}

	if err := os.WriteFile(outFile, []byte(nav.Render()), 0o600); err != nil { //nolint:mnd
		return errors.Wrapf(err, "can't write navbar to %s", outFile)
	}

	return nil
}
