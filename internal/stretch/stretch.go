// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package stretch

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/staranto/geoctlgo/internal/raster"
)

// Method selects how the display range is derived from the valid pixels.
type Method int

const (
	// MinMax uses the sample minimum and maximum.
	MinMax Method = iota
	// PercentClip uses a low/high percentile pair of the sample.
	PercentClip
	// StdDev uses mean +/- k * population standard deviation, unclamped.
	StdDev
)

var methodNames = map[Method]string{
	MinMax:      "min_max",
	PercentClip: "percent_clip",
	StdDev:      "std_dev",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a method name to its Method. The empty string defaults to
// min_max.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "min_max":
		return MinMax, nil
	case "percent_clip":
		return PercentClip, nil
	case "std_dev":
		return StdDev, nil
	}
	return 0, &ValidationError{
		Reason: fmt.Sprintf("invalid method %q: choose from 'min_max', 'percent_clip', or 'std_dev'", s),
	}
}

// ValidationError reports unusable inputs: an unknown method or a raster with
// no valid pixel values. It is never silently defaulted away.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Params carries the per-method tuning knobs.
type Params struct {
	// PercentClip is the (low, high) percentile pair for PercentClip.
	PercentClip [2]float64
	// StdFactor is the standard-deviation multiplier for StdDev.
	StdFactor float64
}

// DefaultParams matches the conventional 2/98 clip and 2-sigma stretch.
func DefaultParams() Params {
	return Params{PercentClip: [2]float64{2, 98}, StdFactor: 2}
}

// Range is a display range: the bounds used to map pixel values to a color
// scale.
type Range struct {
	Min float64
	Max float64
}

// Compute reads the first band of the raster at path and derives its display
// range. It has no side effects on the file.
func Compute(path string, method Method, p Params) (Range, error) {
	ds, err := raster.Open(path)
	if err != nil {
		return Range{}, err
	}
	defer ds.Close()

	values, _, _, err := ds.ReadBand1()
	if err != nil {
		return Range{}, err
	}

	var nodata *float64
	if nd, ok := ds.NoData(); ok {
		nodata = &nd
	}

	return FromValues(values, nodata, method, p)
}

// FromValues derives a display range from raw band values. NaN, +/-Inf, and
// cells equal to the no-data sentinel (when declared) are discarded before
// the method is applied.
func FromValues(values []float64, nodata *float64, method Method, p Params) (Range, error) {
	valid := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if nodata != nil && v == *nodata {
			continue
		}
		valid = append(valid, v)
	}

	if len(valid) == 0 {
		return Range{}, &ValidationError{Reason: "no valid pixel values found in the raster"}
	}

	switch method {
	case MinMax:
		lo, hi := valid[0], valid[0]
		for _, v := range valid[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		return Range{Min: lo, Max: hi}, nil

	case PercentClip:
		sort.Float64s(valid)
		return Range{
			Min: percentile(valid, p.PercentClip[0]),
			Max: percentile(valid, p.PercentClip[1]),
		}, nil

	case StdDev:
		mean := stat.Mean(valid, nil)
		sd := stat.PopStdDev(valid, nil)
		return Range{
			Min: mean - p.StdFactor*sd,
			Max: mean + p.StdFactor*sd,
		}, nil
	}

	return Range{}, &ValidationError{
		Reason: fmt.Sprintf("invalid method %q: choose from 'min_max', 'percent_clip', or 'std_dev'", method),
	}
}

// percentile returns the p-th percentile of sorted values using linear
// interpolation between the closest ranks at position (n-1)*p/100.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	pos := float64(n-1) * p / 100
	if pos <= 0 {
		return sorted[0]
	}
	if pos >= float64(n-1) {
		return sorted[n-1]
	}

	lo := int(math.Floor(pos))
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
