// SPDX-License-Identifier: MIT

package simulate

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/rmt/ensemble"
)

// besselJ1Zero1 is j₁,₁, the first positive zero of the Bessel function J₁.
// It converts the dimensionless time grid onto the physical scale where the
// form-factor slope change sits near t = 1.
const besselJ1Zero1 = 3.8317059702075123

// Simulation directory names.
const (
	simSpectralStatistics = "spectral_statistics"
	simCDOEvolve          = "cdo_evolve"
)

// partition splits realizs across workers as evenly as possible; the first
// realizs%workers workers take one extra.
func partition(realizs, workers int) []int {
	per, rem := realizs/workers, realizs%workers
	parts := make([]int, workers)
	for i := range parts {
		parts[i] = per
		if i < rem {
			parts[i]++
		}
	}
	return parts
}

// runDir creates <out>/<sim>/<ensemble path>/realizs_<R>/<UTC stamp>-<id8>/
// and returns it. An empty out disables persistence and returns "".
func runDir(out, sim string, e *ensemble.Ensemble, realizs int) (string, error) {
	if out == "" {
		return "", nil
	}
	stamp := time.Now().UTC().Format("2006-01-02_15-04-05")
	id := uuid.NewString()[:8]
	dir := filepath.Join(out, sim, filepath.FromSlash(e.DirPath()),
		fmt.Sprintf("realizs_%d", realizs), stamp+"-"+id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("simulate: create run dir: %w", err)
	}
	return dir, nil
}
