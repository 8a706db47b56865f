// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputValidator(t *testing.T) {
	assert.NoError(t, OutputValidator("text"))
	assert.NoError(t, OutputValidator("json"))
	assert.NoError(t, OutputValidator("yaml"))
	assert.Error(t, OutputValidator("toml"))
}

func TestMethodValidator(t *testing.T) {
	assert.NoError(t, MethodValidator("min_max"))
	assert.NoError(t, MethodValidator("percent_clip"))
	assert.NoError(t, MethodValidator("std_dev"))

	err := MethodValidator("equalize")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_max")
}

func TestParseClip(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantLow  float64
		wantHigh float64
		wantErr  bool
	}{
		{name: "default pair", in: "2,98", wantLow: 2, wantHigh: 98},
		{name: "with spaces", in: " 10 , 90 ", wantLow: 10, wantHigh: 90},
		{name: "fractional", in: "0.5,99.5", wantLow: 0.5, wantHigh: 99.5},
		{name: "missing comma", in: "298", wantErr: true},
		{name: "inverted", in: "98,2", wantErr: true},
		{name: "out of bounds", in: "-1,98", wantErr: true},
		{name: "not numbers", in: "low,high", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low, high, err := ParseClip(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLow, low)
			assert.Equal(t, tt.wantHigh, high)
		})
	}
}
