// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package stretch

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Method
		wantErr bool
	}{
		{name: "min_max", in: "min_max", want: MinMax},
		{name: "percent_clip", in: "percent_clip", want: PercentClip},
		{name: "std_dev", in: "std_dev", want: StdDev},
		{name: "empty defaults to min_max", in: "", want: MinMax},
		{name: "unknown", in: "histogram", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				// The error must name the accepted variants.
				assert.Contains(t, verr.Error(), "min_max")
				assert.Contains(t, verr.Error(), "percent_clip")
				assert.Contains(t, verr.Error(), "std_dev")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromValuesMinMax(t *testing.T) {
	r, err := FromValues([]float64{1, 5, 3, 9, 2}, nil, MinMax, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 1, Max: 9}, r)
}

func TestFromValuesMinMaxExcludesNaNInf(t *testing.T) {
	values := []float64{1, math.NaN(), math.Inf(1), 5, math.Inf(-1)}
	r, err := FromValues(values, nil, MinMax, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 1, Max: 5}, r)
}

func TestFromValuesNoDataSentinel(t *testing.T) {
	nodata := -9999.0
	values := []float64{-9999, 1, 5, -9999, 3, 9, 2}
	r, err := FromValues(values, &nodata, MinMax, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 1, Max: 9}, r)
}

func TestFromValuesPercentClip(t *testing.T) {
	// 100 values evenly spaced 1..100. With linear interpolation at position
	// (n-1)*p/100: p=2 -> 99*0.02=1.98 -> 2.98, p=98 -> 99*0.98=97.02 -> 98.02.
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1)
	}

	r, err := FromValues(values, nil, PercentClip, DefaultParams())
	require.NoError(t, err)
	assert.InDelta(t, 2.98, r.Min, 1e-9)
	assert.InDelta(t, 98.02, r.Max, 1e-9)
}

func TestFromValuesPercentClipCustom(t *testing.T) {
	values := make([]float64, 101)
	for i := range values {
		values[i] = float64(i)
	}

	p := DefaultParams()
	p.PercentClip = [2]float64{10, 90}
	r, err := FromValues(values, nil, PercentClip, p)
	require.NoError(t, err)
	assert.InDelta(t, 10, r.Min, 1e-9)
	assert.InDelta(t, 90, r.Max, 1e-9)
}

func TestFromValuesStdDev(t *testing.T) {
	// mean 10, population stddev 2; k=2 -> (6, 14), unclamped even though no
	// sample equals either bound.
	values := []float64{8, 12, 8, 12}
	r, err := FromValues(values, nil, StdDev, DefaultParams())
	require.NoError(t, err)
	assert.InDelta(t, 6, r.Min, 1e-9)
	assert.InDelta(t, 14, r.Max, 1e-9)
}

func TestFromValuesStdDevFactor(t *testing.T) {
	values := []float64{8, 12, 8, 12}
	p := DefaultParams()
	p.StdFactor = 1
	r, err := FromValues(values, nil, StdDev, p)
	require.NoError(t, err)
	assert.InDelta(t, 8, r.Min, 1e-9)
	assert.InDelta(t, 12, r.Max, 1e-9)
}

func TestFromValuesEmptyAfterFiltering(t *testing.T) {
	nodata := -9999.0
	values := []float64{-9999, -9999, -9999}

	_, err := FromValues(values, &nodata, MinMax, DefaultParams())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "no valid pixel values")
}

func TestFromValuesAllNaN(t *testing.T) {
	values := []float64{math.NaN(), math.NaN()}
	_, err := FromValues(values, nil, MinMax, DefaultParams())
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestFromValuesUnknownMethod(t *testing.T) {
	_, err := FromValues([]float64{1, 2, 3}, nil, Method(42), DefaultParams())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "percent_clip")
}

// testdata/band.tif is a 3x2 float32 GeoTIFF with no-data -9999: its cells
// are {8, 12, -9999, 8, 12, NaN}, so the valid values are {8, 12, 8, 12}.
func TestComputeGeoTIFF(t *testing.T) {
	path := filepath.Join("testdata", "band.tif")

	tests := []struct {
		name   string
		method Method
		want   Range
	}{
		{name: "min_max", method: MinMax, want: Range{Min: 8, Max: 12}},
		{name: "percent_clip", method: PercentClip, want: Range{Min: 8, Max: 12}},
		{name: "std_dev", method: StdDev, want: Range{Min: 6, Max: 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Compute(path, tt.method, DefaultParams())
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Min, r.Min, 1e-9)
			assert.InDelta(t, tt.want.Max, r.Max, 1e-9)
		})
	}
}

func TestComputeMissingFile(t *testing.T) {
	_, err := Compute(filepath.Join(t.TempDir(), "nope.tif"), MinMax, DefaultParams())
	assert.Error(t, err)
}

func TestPercentileBounds(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}
	assert.Equal(t, 1.0, percentile(sorted, 0))
	assert.Equal(t, 5.0, percentile(sorted, 100))
	assert.Equal(t, 3.0, percentile(sorted, 50))
	assert.Equal(t, 7.0, percentile([]float64{7}, 50))
}
