// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/geoctlgo/internal/catalog"
	"github.com/staranto/geoctlgo/internal/fetcher"
	"github.com/staranto/geoctlgo/internal/meta"
	"github.com/staranto/geoctlgo/internal/raster"
)

// FetchCommandAction materializes one dataset into the local cache and
// prints where it landed.
func FetchCommandAction(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("no dataset specified: see 'geoctl datasets'")
	}

	iso := cmd.String("iso")
	bucket, err := RequireBucket(cmd)
	if err != nil {
		return err
	}

	key, err := ConfiguredCatalog().Resolve(name, iso)
	if err != nil {
		return err
	}

	destDir := cmd.String("dest")
	if destDir == "" {
		destDir = filepath.Join(SessionDirOf(cmd), iso, name)
	}

	st, err := NewStore(ctx, cmd)
	if err != nil {
		return err
	}

	localPath, err := fetcher.Fetch(ctx, st, bucket, key, destDir, fetcher.Options{TTL: TTLOf(cmd)})
	if err != nil {
		return err
	}

	if cmd.Bool("overviews") && catalog.KindOf(key) == catalog.KindRaster {
		if _, err := raster.EnsureOverviews(localPath, nil, 0); err != nil {
			return err
		}
	}

	fi, err := os.Stat(localPath)
	if err != nil {
		return err
	}

	return Emit(cmd,
		[]string{"path", "size"},
		[][]string{{localPath, humanize.IBytes(uint64(fi.Size()))}})
}

// FetchCommandBuilder constructs the cli.Command for "fetch".
func FetchCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	flags := append(NewGlobalFlags("fetch"),
		NewBucketFlag("fetch"),
		NewISOFlag(),
		NewTTLFlag(),
		&cli.StringFlag{
			Name:    "dest",
			Aliases: []string{"d"},
			Usage:   "destination directory (defaults to the session cache)",
		},
		&cli.BoolFlag{
			Name:        "overviews",
			Usage:       "build raster overviews after fetching",
			HideDefault: true,
		},
	)

	return &cli.Command{
		Name:      "fetch",
		Usage:     "download a dataset into the local cache",
		UsageText: `geoctl fetch <dataset> --iso XXX [options]`,
		Flags:     flags,
		Action:    FetchCommandAction,
		Metadata:  map[string]any{"meta": meta},
	}
}
