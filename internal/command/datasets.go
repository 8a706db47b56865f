// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/geoctlgo/internal/meta"
)

// DatasetsCommandAction lists the catalog: every dataset name, its preview
// kind, and the key template it resolves through.
func DatasetsCommandAction(ctx context.Context, cmd *cli.Command) error {
	cat := ConfiguredCatalog()

	var rows [][]string
	for _, d := range cat.Datasets() {
		rows = append(rows, []string{d.Name, d.Kind().String(), d.KeyTemplate})
	}
	return Emit(cmd, []string{"dataset", "kind", "key"}, rows)
}

// DatasetsCommandBuilder constructs the cli.Command for "datasets".
func DatasetsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "datasets",
		Usage:    "list the dataset catalog",
		Flags:    NewGlobalFlags("datasets"),
		Action:   DatasetsCommandAction,
		Metadata: map[string]any{"meta": meta},
	}
}
