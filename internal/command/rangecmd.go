// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/geoctlgo/internal/fetcher"
	"github.com/staranto/geoctlgo/internal/meta"
	"github.com/staranto/geoctlgo/internal/stretch"
	"github.com/staranto/geoctlgo/internal/util"
)

// RangeCommandAction computes the display range of a raster, fetching it
// first when an s3:// URL is given instead of a local path.
func RangeCommandAction(ctx context.Context, cmd *cli.Command) error {
	target := cmd.Args().First()
	if target == "" {
		return fmt.Errorf("no raster specified: pass a local path or an s3:// URL")
	}

	method, err := stretch.ParseMethod(cmd.String("method"))
	if err != nil {
		return err
	}

	params := stretch.DefaultParams()
	if clip := cmd.String("clip"); clip != "" {
		low, high, err := ParseClip(clip)
		if err != nil {
			return err
		}
		params.PercentClip = [2]float64{low, high}
	}
	if std := cmd.Float("std"); std > 0 {
		params.StdFactor = std
	}

	localPath := target
	if strings.HasPrefix(target, "s3://") {
		bucket, key, err := util.ParseObjectURL(target)
		if err != nil {
			return err
		}

		st, err := NewStore(ctx, cmd)
		if err != nil {
			return err
		}

		// The key's remote directory disambiguates basenames locally.
		destDir := filepath.Join(SessionDirOf(cmd), bucket, path.Dir(key))
		localPath, err = fetcher.Fetch(ctx, st, bucket, key, destDir, fetcher.Options{TTL: TTLOf(cmd)})
		if err != nil {
			return err
		}
	}

	r, err := stretch.Compute(localPath, method, params)
	if err != nil {
		return err
	}

	return Emit(cmd,
		[]string{"method", "min", "max"},
		[][]string{{
			method.String(),
			strconv.FormatFloat(r.Min, 'g', -1, 64),
			strconv.FormatFloat(r.Max, 'g', -1, 64),
		}})
}

// RangeCommandBuilder constructs the cli.Command for "range".
func RangeCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	flags := append(NewGlobalFlags("range"),
		NewBucketFlag("range"),
		NewTTLFlag(),
		&cli.StringFlag{
			Name:    "method",
			Aliases: []string{"m"},
			Usage:   "stretch method: min_max, percent_clip, or std_dev",
			Value:   "min_max",
			Validator: func(value string) error {
				return FlagValidators(value, MethodValidator)
			},
		},
		&cli.StringFlag{
			Name:  "clip",
			Usage: "low,high percentiles for percent_clip",
			Validator: func(value string) error {
				return FlagValidators(value, ClipValidator)
			},
		},
		&cli.FloatFlag{
			Name:  "std",
			Usage: "standard-deviation multiplier for std_dev",
		},
	)

	return &cli.Command{
		Name:      "range",
		Usage:     "compute a raster display range",
		UsageText: `geoctl range <path|s3://bucket/key> [options]`,
		Flags:     flags,
		Action:    RangeCommandAction,
		Metadata:  map[string]any{"meta": meta},
	}
}
