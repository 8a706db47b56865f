// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package raster

import (
	"fmt"
	"os"
	"sync"

	"github.com/airbusgeo/godal"
	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// DefaultOverviewMinBytes is the size above which overviews are built.
const DefaultOverviewMinBytes = 100 * 1024 * 1024

// DefaultOverviewLevels are the decimation factors for built overviews.
var DefaultOverviewLevels = []int{2, 4, 8, 16, 32, 64}

var registerOnce sync.Once

func register() {
	registerOnce.Do(godal.RegisterAll)
}

// Dataset is a read handle on a raster file.
type Dataset struct {
	ds *godal.Dataset
}

// Open opens path read-only. The caller must Close the returned Dataset.
func Open(path string) (*Dataset, error) {
	register()
	ds, err := godal.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open raster %s: %w", path, err)
	}
	return &Dataset{ds: ds}, nil
}

// BandCount returns the number of bands in the dataset.
func (d *Dataset) BandCount() int {
	return d.ds.Structure().NBands
}

// NoData returns the declared no-data sentinel of the first band, if any.
func (d *Dataset) NoData() (float64, bool) {
	bands := d.ds.Bands()
	if len(bands) == 0 {
		return 0, false
	}
	return bands[0].NoData()
}

// ReadBand1 reads the entire first band as float64 pixel values in row-major
// order, along with the band width and height.
func (d *Dataset) ReadBand1() ([]float64, int, int, error) {
	st := d.ds.Structure()
	if st.NBands < 1 {
		return nil, 0, 0, fmt.Errorf("raster has no bands")
	}

	band := d.ds.Bands()[0]
	buf := make([]float64, st.SizeX*st.SizeY)
	if err := band.Read(0, 0, buf, st.SizeX, st.SizeY); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to read band 1: %w", err)
	}

	return buf, st.SizeX, st.SizeY, nil
}

// Close releases the underlying dataset.
func (d *Dataset) Close() error {
	return d.ds.Close()
}

// WantOverviews reports whether a file at path is big enough to warrant
// overviews. minBytes <= 0 means DefaultOverviewMinBytes.
func WantOverviews(path string, minBytes int64) (bool, error) {
	if minBytes <= 0 {
		minBytes = DefaultOverviewMinBytes
	}
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return fi.Size() >= minBytes, nil
}

// EnsureOverviews builds nearest-resampled overviews in place when the file
// is at least minBytes and has none yet. Returns true if overviews were
// built. Smaller files and files with existing overviews are left alone.
func EnsureOverviews(path string, levels []int, minBytes int64) (bool, error) {
	want, err := WantOverviews(path, minBytes)
	if err != nil {
		return false, err
	}
	if !want {
		return false, nil
	}

	if len(levels) == 0 {
		levels = DefaultOverviewLevels
	}

	register()
	ds, err := godal.Open(path, godal.Update())
	if err != nil {
		return false, fmt.Errorf("failed to open raster %s for update: %w", path, err)
	}
	defer ds.Close()

	bands := ds.Bands()
	if len(bands) == 0 {
		return false, fmt.Errorf("raster has no bands")
	}
	if len(bands[0].Overviews()) > 0 {
		return false, nil
	}

	if fi, err := os.Stat(path); err == nil {
		log.Infof("building overviews for %s (%s)", path, humanize.IBytes(uint64(fi.Size())))
	}

	if err := ds.BuildOverviews(godal.Levels(levels...), godal.Resampling(godal.Nearest)); err != nil {
		return false, fmt.Errorf("failed to build overviews: %w", err)
	}
	if err := ds.SetMetadata("resampling", "nearest", godal.Domain("rio")); err != nil {
		log.WithError(err).Warn("failed to tag overview resampling")
	}

	return true, nil
}
