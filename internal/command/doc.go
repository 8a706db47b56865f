// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package command builds the geoctl CLI: one builder per subcommand plus the
// shared flag set and validators.
package command
