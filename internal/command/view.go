// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/staranto/geoctlgo/internal/config"
	"github.com/staranto/geoctlgo/internal/dashboard"
	"github.com/staranto/geoctlgo/internal/meta"
)

// ViewCommandAction launches the interactive dashboard.
func ViewCommandAction(ctx context.Context, cmd *cli.Command) error {
	bucket, err := RequireBucket(cmd)
	if err != nil {
		return err
	}

	st, err := NewStore(ctx, cmd)
	if err != nil {
		return err
	}

	prefixes := ConfiguredPrefixes()
	purgeHours, _ := config.GetInt("cache.purge-hours", 168)

	return dashboard.Run(ctx, dashboard.Deps{
		Store:      st,
		Bucket:     bucket,
		Catalog:    ConfiguredCatalog(),
		GISPrefix:  prefixes.GIS,
		TTL:        TTLOf(cmd),
		PurgeAge:   time.Duration(purgeHours) * time.Hour,
		SessionDir: SessionDirOf(cmd),
	})
}

// ViewCommandBuilder constructs the cli.Command for "view".
func ViewCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	flags := append(NewGlobalFlags("view"),
		NewBucketFlag("view"),
		NewTTLFlag(),
	)

	return &cli.Command{
		Name:      "view",
		Usage:     "interactive dataset viewer",
		UsageText: `geoctl view [options]`,
		Flags:     flags,
		Action:    ViewCommandAction,
		Metadata:  map[string]any{"meta": meta},
	}
}
