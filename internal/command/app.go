// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0
package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/geoctlgo/internal/config"
	"github.com/staranto/geoctlgo/internal/meta"
	"github.com/staranto/geoctlgo/internal/util"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the geoctl
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load(ns)
	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		SessionDir:  util.SessionDir(),
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "geoctl",
		Usage: "Geospatial Data Viewer",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "geoctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		DatasetsCommandBuilder(app, meta),
		FetchCommandBuilder(app, meta),
		LsCommandBuilder(app, meta),
		RangeCommandBuilder(app, meta),
		ViewCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
