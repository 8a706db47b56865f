// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	awsx "github.com/staranto/geoctlgo/internal/aws"
	"github.com/staranto/geoctlgo/internal/catalog"
	"github.com/staranto/geoctlgo/internal/config"
	"github.com/staranto/geoctlgo/internal/meta"
	"github.com/staranto/geoctlgo/internal/output"
	"github.com/staranto/geoctlgo/internal/store"
	"github.com/staranto/geoctlgo/internal/util"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewStore builds the S3-backed object store from the command's AWS flags.
func NewStore(ctx context.Context, cmd *cli.Command) (store.Store, error) {
	var opts []awsx.Option
	if p := cmd.String("profile"); p != "" {
		opts = append(opts, awsx.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, awsx.WithRegion(r))
	}

	awsCfg, err := awsx.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return store.NewS3Store(awsx.NewS3(awsCfg)), nil
}

// RequireBucket resolves the bucket from the flag chain and errors if none
// was provided anywhere.
func RequireBucket(cmd *cli.Command) (string, error) {
	bucket := cmd.String("bucket")
	if bucket == "" {
		return "", fmt.Errorf("no bucket specified: use --bucket, GEOCTL_BUCKET, or geoctl.yaml")
	}
	return bucket, nil
}

// TTLOf converts the --ttl flag (hours) to a duration.
func TTLOf(cmd *cli.Command) time.Duration {
	return time.Duration(cmd.Int("ttl")) * time.Hour
}

// Emit writes titled rows to stdout per the global output flags.
func Emit(cmd *cli.Command, titles []string, rows [][]string) error {
	return output.Spit(os.Stdout, titles, rows, output.Options{
		Format: cmd.String("output"),
		Color:  cmd.Bool("color"),
		Titles: cmd.Bool("titles"),
	})
}

// ConfiguredPrefixes reads the catalog prefixes from config, with the
// upstream bucket layout as defaults.
func ConfiguredPrefixes() catalog.Prefixes {
	gis, _ := config.GetString("prefixes.gis", "gis_data")
	socio, _ := config.GetString("prefixes.socio", "socio_economic_data")
	techno, _ := config.GetString("prefixes.techno", "techno_economic_data")
	return catalog.Prefixes{
		GIS:            gis,
		SocioEconomic:  socio,
		TechnoEconomic: techno,
	}
}

// ConfiguredCatalog returns the dataset catalog. A datasets list in
// geoctl.yaml ("name=key-template" entries) replaces the built-in table;
// otherwise the built-in table applies, hung off the configured prefixes.
func ConfiguredCatalog() catalog.Catalog {
	entries, err := config.GetStringSlice("datasets")
	if err != nil || len(entries) == 0 {
		return catalog.Default(ConfiguredPrefixes())
	}

	datasets := make([]catalog.Dataset, 0, len(entries))
	for _, e := range entries {
		name, key, ok := strings.Cut(e, "=")
		name, key = strings.TrimSpace(name), strings.TrimSpace(key)
		if !ok || name == "" || key == "" {
			log.Warnf("ignoring malformed datasets entry: %q", e)
			continue
		}
		datasets = append(datasets, catalog.Dataset{Name: name, KeyTemplate: key})
	}
	if len(datasets) == 0 {
		return catalog.Default(ConfiguredPrefixes())
	}
	return catalog.New(datasets)
}

// SessionDirOf returns the session directory recorded at app init, resolving
// it fresh only when the command carries no metadata.
func SessionDirOf(cmd *cli.Command) string {
	if d := GetMeta(cmd).SessionDir; d != "" {
		return d
	}
	return util.SessionDir()
}
