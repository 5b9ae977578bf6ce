// SPDX-License-Identifier: MIT

// Command rmt runs random-matrix Monte Carlo simulations and renders their
// figures.
//
//	rmt spectral --ensemble '{"class":"goe","dim":512}' --realizs 1000
//	rmt evolve   --ensemble '{"class":"syk","N":16,"q":4}' --realizs 200
//	rmt plot     --data-dir outputs/spectral_statistics/goe/...
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "rmt",
		Short:         "Monte Carlo spectral statistics of random-matrix ensembles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}
			logrus.SetLevel(lvl)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "info", "logrus level (trace..panic)")

	root.AddCommand(newSpectralCmd())
	root.AddCommand(newEvolveCmd())
	root.AddCommand(newPlotCmd())
	return root
}
