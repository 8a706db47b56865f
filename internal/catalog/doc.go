// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package catalog maps dataset names to object-store key templates with a
// region-code placeholder.
package catalog
