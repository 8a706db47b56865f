// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package config loads geoctl.yaml and exposes dotted-key getters with
// optional per-command namespacing.
package config
