// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package raster reads single-band pixel data and no-data sentinels through
// GDAL, and builds multi-resolution overviews for large files.
package raster
