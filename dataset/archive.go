// SPDX-License-Identifier: MIT

package dataset

import (
	"archive/zip"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/katalvlaran/rmt/ensemble"
)

const (
	metadataEntry = "metadata.json"
	extF64        = ".f64"
	extC128       = ".c128"
)

// Meta is the metadata.json document of an archive: the dataset name, the
// ensemble the run sampled, the container's scalar fields and free-form
// run arguments.
type Meta struct {
	Name     string             `json:"name"`
	Ensemble *ensemble.Spec     `json:"ensemble,omitempty"`
	Scalars  map[string]float64 `json:"scalars,omitempty"`
	Args     map[string]string  `json:"args,omitempty"`
	SavedAt  time.Time          `json:"saved_at"`
}

// Save archives ds at path: metadata.json plus one raw little-endian entry
// per array. The archive is written to <path>.tmp, synced and renamed, so
// an interrupted save never leaves a torn file behind.
func Save(path string, ds Dataset, ens *ensemble.Spec, args map[string]string) error {
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("Save %s: %w", path, err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("Save %s: %w", path, err)
	}
	if err := writeArchive(f, ds, ens, args); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("Save %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("Save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("Save %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("Save %s: %w", path, err)
	}
	return nil
}

func writeArchive(w io.Writer, ds Dataset, ens *ensemble.Spec, args map[string]string) error {
	zw := zip.NewWriter(w)

	meta := Meta{
		Name:     ds.Name(),
		Ensemble: ens,
		Scalars:  ds.scalars(),
		Args:     args,
		SavedAt:  time.Now().UTC(),
	}
	doc, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	mw, err := zw.Create(metadataEntry)
	if err != nil {
		return err
	}
	if _, err := mw.Write(doc); err != nil {
		return err
	}

	f64s, c128s := ds.arrays()
	for _, name := range sortedKeys(f64s) {
		ew, err := zw.Create(name + extF64)
		if err != nil {
			return err
		}
		if _, err := ew.Write(encodeF64(f64s[name])); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(c128s) {
		ew, err := zw.Create(name + extC128)
		if err != nil {
			return err
		}
		if _, err := ew.Write(encodeC128(c128s[name])); err != nil {
			return err
		}
	}
	return zw.Close()
}

// Load reads an archive, dispatches through the registry by the metadata
// name and returns the validated container together with its metadata.
func Load(path string) (Dataset, *Meta, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("Load %s: %w", path, err)
	}
	defer zr.Close()

	var meta *Meta
	f64s := make(map[string][]float64)
	c128s := make(map[string][]complex128)

	for _, entry := range zr.File {
		data, err := readEntry(entry)
		if err != nil {
			return nil, nil, fmt.Errorf("Load %s: entry %s: %w", path, entry.Name, err)
		}
		switch {
		case entry.Name == metadataEntry:
			meta = &Meta{}
			if err := json.Unmarshal(data, meta); err != nil {
				return nil, nil, fmt.Errorf("Load %s: %w", path, ErrBadMetadata)
			}
		case strings.HasSuffix(entry.Name, extF64):
			arr, err := decodeF64(data)
			if err != nil {
				return nil, nil, fmt.Errorf("Load %s: entry %s: %w", path, entry.Name, err)
			}
			f64s[strings.TrimSuffix(entry.Name, extF64)] = arr
		case strings.HasSuffix(entry.Name, extC128):
			arr, err := decodeC128(data)
			if err != nil {
				return nil, nil, fmt.Errorf("Load %s: entry %s: %w", path, entry.Name, err)
			}
			c128s[strings.TrimSuffix(entry.Name, extC128)] = arr
		}
	}
	if meta == nil {
		return nil, nil, fmt.Errorf("Load %s: %w", path, ErrBadMetadata)
	}

	ds, err := New(meta.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("Load %s: %w", path, err)
	}
	if err := ds.restore(meta.Scalars, f64s, c128s); err != nil {
		return nil, nil, fmt.Errorf("Load %s: %w", path, err)
	}
	if err := ds.Validate(); err != nil {
		return nil, nil, fmt.Errorf("Load %s: %w", path, err)
	}
	return ds, meta, nil
}

func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func encodeF64(vals []float64) []byte {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	return buf
}

func decodeF64(data []byte) ([]float64, error) {
	if len(data)%8 != 0 {
		return nil, ErrShapeMismatch
	}
	vals := make([]float64, len(data)/8)
	for i := range vals {
		vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[8*i:]))
	}
	return vals, nil
}

func encodeC128(vals []complex128) []byte {
	buf := make([]byte, 16*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[16*i:], math.Float64bits(real(v)))
		binary.LittleEndian.PutUint64(buf[16*i+8:], math.Float64bits(imag(v)))
	}
	return buf
}

func decodeC128(data []byte) ([]complex128, error) {
	if len(data)%16 != 0 {
		return nil, ErrShapeMismatch
	}
	vals := make([]complex128, len(data)/16)
	for i := range vals {
		re := math.Float64frombits(binary.LittleEndian.Uint64(data[16*i:]))
		im := math.Float64frombits(binary.LittleEndian.Uint64(data[16*i+8:]))
		vals[i] = complex(re, im)
	}
	return vals, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
