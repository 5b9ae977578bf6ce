// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rmt/dataset"
	"github.com/katalvlaran/rmt/ensemble"
	"github.com/katalvlaran/rmt/visual"
)

// Archive names a run directory may contain.
var plotArchives = []string{
	"spectrum.zip", "spacings.zip", "form_factors.zip", "cdo_dynamics.zip",
}

func newPlotCmd() *cobra.Command {
	var dataDir string
	var unfold bool
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the archives of a run directory into figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderRun(dataDir, unfold)
		},
	}
	cmd.Flags().StringVarP(&dataDir, "data-dir", "d", "", "run directory holding the archives")
	cmd.Flags().BoolVar(&unfold, "unfold", false, "draw the unfolded axes")
	_ = cmd.MarkFlagRequired("data-dir")
	return cmd
}

// renderRun loads whatever archives the directory holds and writes a PNG
// per container plus an interactive report.html next to them.
func renderRun(dir string, unfold bool) error {
	rc := visual.RunCharts{Title: filepath.Base(dir)}
	var e *ensemble.Ensemble
	found := false

	for _, name := range plotArchives {
		path := filepath.Join(dir, name)
		ds, meta, err := dataset.Load(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		found = true
		if e == nil && meta.Ensemble != nil {
			if e, err = ensemble.FromSpec(*meta.Ensemble); err != nil {
				return err
			}
		}
		switch d := ds.(type) {
		case *dataset.SpectralDensity:
			rc.Density = d
		case *dataset.SpacingHistogram:
			rc.Spacings = d
		case *dataset.FormFactors:
			rc.FormFactors = d
		case *dataset.CDODynamics:
			rc.Dynamics = d
		}
	}
	if !found {
		return fmt.Errorf("plot: no archives in %s", dir)
	}

	if rc.Density != nil && e != nil {
		p, err := visual.DensityPlot(e, rc.Density, unfold)
		if err != nil {
			return err
		}
		if err := visual.SavePNG(p, filepath.Join(dir, "spectral_density.png")); err != nil {
			return err
		}
	}
	if rc.Spacings != nil && e != nil {
		p, err := visual.SpacingPlot(e, rc.Spacings, unfold)
		if err != nil {
			return err
		}
		if err := visual.SavePNG(p, filepath.Join(dir, "spacing_histogram.png")); err != nil {
			return err
		}
	}
	if rc.FormFactors != nil && e != nil {
		p, err := visual.FormFactorsPlot(e, rc.FormFactors, unfold)
		if err != nil {
			return err
		}
		if err := visual.SavePNG(p, filepath.Join(dir, "form_factors.png")); err != nil {
			return err
		}
	}
	if rc.Dynamics != nil {
		p, err := visual.DynamicsPlot(rc.Dynamics)
		if err != nil {
			return err
		}
		if err := visual.SavePNG(p, filepath.Join(dir, "cdo_dynamics.png")); err != nil {
			return err
		}
	}

	f, err := os.Create(filepath.Join(dir, "report.html"))
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	defer f.Close()
	return rc.Render(f)
}
