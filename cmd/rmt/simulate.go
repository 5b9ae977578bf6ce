// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rmt/ensemble"
	"github.com/katalvlaran/rmt/simulate"
)

// simFlags carries the options shared by both simulation commands.
type simFlags struct {
	ensembleJSON string
	opts         simulate.Options
}

func (f *simFlags) register(cmd *cobra.Command) {
	f.opts = simulate.DefaultOptions()
	cmd.Flags().StringVarP(&f.ensembleJSON, "ensemble", "e", "", `ensemble spec, e.g. '{"class":"goe","dim":512}'`)
	cmd.Flags().IntVarP(&f.opts.Realizs, "realizs", "r", f.opts.Realizs, "number of matrix realizations")
	cmd.Flags().IntVarP(&f.opts.Workers, "workers", "w", f.opts.Workers, "requested parallelism")
	cmd.Flags().Float64VarP(&f.opts.MemoryGiB, "memory", "m", f.opts.MemoryGiB, "memory budget in GiB")
	cmd.Flags().StringVarP(&f.opts.OutDir, "out", "o", f.opts.OutDir, "output root, empty disables persistence")
	cmd.Flags().IntVar(&f.opts.NumBins, "bins", f.opts.NumBins, "histogram bins")
	cmd.Flags().IntVar(&f.opts.NumTimes, "times", f.opts.NumTimes, "time grid points")
	_ = cmd.MarkFlagRequired("ensemble")
}

func (f *simFlags) build() (*ensemble.Ensemble, error) {
	e, err := ensemble.UnmarshalSpec([]byte(f.ensembleJSON))
	if err != nil {
		return nil, err
	}
	f.opts.Log = logrus.StandardLogger()
	return e, nil
}

func newSpectralCmd() *cobra.Command {
	var flags simFlags
	cmd := &cobra.Command{
		Use:   "spectral",
		Short: "Accumulate level density, spacing and form factor statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.build()
			if err != nil {
				return err
			}
			res, err := simulate.SpectralStatistics(e, flags.opts)
			if err != nil {
				return err
			}
			if res.ThoulessTime > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "thouless time: %g\n", res.ThoulessTime)
			}
			if res.RunDir != "" {
				if err := renderRun(res.RunDir, false); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.RunDir)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newEvolveCmd() *cobra.Command {
	var flags simFlags
	var copts simulate.CDOOptions
	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Evolve the chaotic density operator of a many-body ensemble",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.build()
			if err != nil {
				return err
			}
			res, err := simulate.CDOEvolve(e, flags.opts, copts)
			if err != nil {
				return err
			}
			if res.Dynamics.ThoulessTime > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "thouless time: %g\n", res.Dynamics.ThoulessTime)
			}
			if res.RunDir != "" {
				if err := renderRun(res.RunDir, copts.Unfold); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.RunDir)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&copts.ObsQ, "obs-q", simulate.DefaultObsQ, "q-parameter of the probe observable")
	cmd.Flags().BoolVar(&copts.Unfold, "unfold", false, "evolve on the unfolded energy axis")
	cmd.Flags().BoolVar(&copts.KeepStates, "keep-states", false, "archive every evolved state vector")
	return cmd
}
