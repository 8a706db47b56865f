// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/geoctlgo/internal/config"
	"github.com/staranto/geoctlgo/internal/fetcher"
)

func init() {
	cfg, _ = config.Load("")
}

var cfg config.Type

// NewGlobalFlags returns the flag set shared by every subcommand. params[0]
// is the command name used to namespace config lookups.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:  "profile",
			Usage: "AWS shared config profile",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_PROFILE"),
				yaml.YAML("profile", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.StringFlag{
			Name:  "region",
			Usage: "AWS region override",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("region", altsrc.StringSourcer(cfg.Source)),
			),
		},
	}

	return
}

// NewBucketFlag constructs the "bucket" flag, namespaced to a command when
// params[0] is provided.
func NewBucketFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "bucket",
		Aliases: []string{"b"},
		Usage:   "object store bucket holding the datasets",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("GEOCTL_BUCKET"),
		),
	}

	if len(params) == 1 {
		flag.Sources = cli.NewValueSourceChain(
			cli.EnvVar("GEOCTL_BUCKET"),
			yaml.YAML(params[0]+"."+"bucket", altsrc.StringSourcer(cfg.Source)),
			yaml.YAML("bucket", altsrc.StringSourcer(cfg.Source)),
		)
	}

	return
}

// NewISOFlag constructs the "iso" region-code flag.
func NewISOFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "iso",
		Aliases: []string{"i"},
		Usage:   "ISO3 region code to resolve dataset keys with",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("GEOCTL_ISO"),
		),
	}
}

// NewTTLFlag constructs the cache freshness window flag, in hours. The 24h
// default is configurable rather than hardcoded on purpose.
func NewTTLFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "ttl",
		Usage: "cache freshness window in hours",
		Sources: cli.NewValueSourceChain(
			yaml.YAML("cache.ttl-hours", altsrc.StringSourcer(cfg.Source)),
		),
		Value: int(fetcher.DefaultTTL.Hours()),
	}
}
