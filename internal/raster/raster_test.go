// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package raster

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testdata/band.tif is a 3x2 float32 GeoTIFF with no-data -9999: its cells
// are {8, 12, -9999, 8, 12, NaN}.
func TestOpenReadBand1(t *testing.T) {
	ds, err := Open(filepath.Join("testdata", "band.tif"))
	require.NoError(t, err)
	defer ds.Close()

	assert.Equal(t, 1, ds.BandCount())

	nd, ok := ds.NoData()
	require.True(t, ok, "no-data sentinel must be declared")
	assert.Equal(t, -9999.0, nd)

	values, w, h, err := ds.ReadBand1()
	require.NoError(t, err)
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	require.Len(t, values, 6)
	assert.Equal(t, []float64{8, 12, -9999, 8, 12}, values[:5])
	assert.True(t, math.IsNaN(values[5]))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.tif"))
	assert.Error(t, err)
}

func TestWantOverviews(t *testing.T) {
	p := filepath.Join(t.TempDir(), "small.tif")
	require.NoError(t, os.WriteFile(p, make([]byte, 1024), 0o600))

	got, err := WantOverviews(p, 0)
	require.NoError(t, err)
	assert.False(t, got, "1 KiB file is below the default threshold")

	got, err = WantOverviews(p, 512)
	require.NoError(t, err)
	assert.True(t, got)

	_, err = WantOverviews(filepath.Join(t.TempDir(), "missing.tif"), 0)
	assert.Error(t, err)
}
