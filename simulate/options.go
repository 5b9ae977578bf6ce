// SPDX-License-Identifier: MIT

package simulate

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rmt/dataset"
)

const bytesPerGiB = 1 << 30

// Options configures a Monte Carlo run. Zero values are invalid; start from
// DefaultOptions and override fields.
type Options struct {
	// Realizs is the number of matrix realizations to average over.
	Realizs int

	// Workers is the requested parallelism. The effective count is clamped
	// to Realizs, to the physical CPU count and to MemoryGiB divided by the
	// per-worker footprint.
	Workers int

	// MemoryGiB is the memory budget of the run.
	MemoryGiB float64

	// OutDir is the root of the run-directory tree. Empty disables
	// persistence; results are still returned in memory.
	OutDir string

	// NumBins is the histogram resolution of both density and spacing
	// histograms.
	NumBins int

	// NumTimes is the form-factor / dynamics time-grid resolution.
	NumTimes int

	// Log receives structured progress output.
	Log *logrus.Logger
}

// DefaultOptions returns a single-worker configuration with the host's
// available memory as the budget and the standard grid resolutions.
func DefaultOptions() Options {
	avail := float64(8)
	if vm, err := mem.VirtualMemory(); err == nil {
		avail = float64(vm.Available) / bytesPerGiB
	}
	return Options{
		Realizs:   1,
		Workers:   1,
		MemoryGiB: avail,
		OutDir:    "outputs",
		NumBins:   dataset.DefaultBins,
		NumTimes:  dataset.DefaultTimes,
		Log:       logrus.StandardLogger(),
	}
}

// validate checks the option invariants shared by every driver.
func (o *Options) validate() error {
	if o.Realizs <= 0 {
		return ErrBadRealizs
	}
	if o.Workers <= 0 {
		return ErrBadWorkers
	}
	if o.NumBins <= 0 || o.NumTimes <= 0 {
		return dataset.ErrBadGrid
	}
	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}
	return nil
}

// effectiveWorkers clamps the requested worker count to the realization
// count, the physical CPU count and the memory budget.
func (o *Options) effectiveWorkers(workerBytes uint64) (int, error) {
	w := o.Workers
	if w > o.Realizs {
		w = o.Realizs
	}
	if phys, err := cpu.Counts(false); err == nil && phys > 0 && w > phys {
		w = phys
	} else if err != nil && w > runtime.NumCPU() {
		w = runtime.NumCPU()
	}
	budget := uint64(o.MemoryGiB * bytesPerGiB)
	if workerBytes > 0 {
		if budget < workerBytes {
			return 0, ErrNotEnoughMemory
		}
		if byMem := int(budget / workerBytes); w > byMem {
			w = byMem
		}
	}
	if w < 1 {
		w = 1
	}
	return w, nil
}
