// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// New builds a command that decodes flags into a fresh *T and hands it to run
// together with the command context. bind declares the flag schema on cmd;
// it may be nil for commands without flags. Decoding is delegated entirely
// to cobra, so its help, error, and usage conventions apply unchanged.
//
// New also registers a persistent --verbose/-v flag owned by the composer;
// when set, the package logger and the process-default charmbracelet/log
// logger switch to debug level before run is invoked, so debug output from
// the integration packages shows up too.
func New[T any](name string, bind func(cmd *cobra.Command, args *T), run func(ctx context.Context, args *T) error) *cobra.Command {
	args := new(T)
	var verbose bool

	cmd := &cobra.Command{
		Use:          name,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetPrefix(name)
			if verbose {
				logger.SetLevel(log.DebugLevel)
				log.SetLevel(log.DebugLevel)
			}
			return run(cmd.Context(), args)
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	if bind != nil {
		bind(cmd, args)
	}
	return cmd
}
