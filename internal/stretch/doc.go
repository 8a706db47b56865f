// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package stretch computes contrast-stretch display ranges for single-band
// rasters from their valid pixel values.
package stretch
