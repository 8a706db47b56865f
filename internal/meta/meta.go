// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package meta carries per-invocation context shared by command builders.
package meta

import (
	"context"

	"github.com/staranto/geoctlgo/internal/config"
)

type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	SessionDir  string
	StartingDir string
}
