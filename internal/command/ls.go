// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/geoctlgo/internal/meta"
)

// LsCommandAction lists the region codes (folder names) available under a
// bucket prefix.
func LsCommandAction(ctx context.Context, cmd *cli.Command) error {
	bucket, err := RequireBucket(cmd)
	if err != nil {
		return err
	}

	prefix := cmd.Args().First()
	if prefix == "" {
		prefix = ConfiguredPrefixes().GIS
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	st, err := NewStore(ctx, cmd)
	if err != nil {
		return err
	}

	isos, err := st.ListCommonPrefixes(ctx, bucket, prefix)
	if err != nil {
		return err
	}

	rows := make([][]string, len(isos))
	for i, iso := range isos {
		rows[i] = []string{iso}
	}
	return Emit(cmd, []string{"iso"}, rows)
}

// LsCommandBuilder constructs the cli.Command for "ls".
func LsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	flags := append(NewGlobalFlags("ls"), NewBucketFlag("ls"))

	return &cli.Command{
		Name:      "ls",
		Usage:     "list region codes in the bucket",
		UsageText: `geoctl ls [prefix] [options]`,
		Flags:     flags,
		Action:    LsCommandAction,
		Metadata:  map[string]any{"meta": meta},
	}
}
