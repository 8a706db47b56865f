// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/staranto/geoctlgo/internal/util"
)

// Summary describes a vector file well enough for a preview pane.
type Summary struct {
	LayerName     string
	Type          string
	FeatureCount  int
	GeometryTypes []string
}

// Summarize inspects a GeoJSON file. Shapefiles get a name-only summary since
// their payload is binary.
func Summarize(path string) (Summary, error) {
	s := Summary{LayerName: util.LayerName(path)}

	if strings.EqualFold(filepath.Ext(path), ".shp") {
		s.Type = "Shapefile"
		return s, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read vector file: %w", err)
	}
	if !gjson.ValidBytes(b) {
		return Summary{}, fmt.Errorf("not valid GeoJSON: %s", path)
	}

	root := gjson.ParseBytes(b)
	s.Type = root.Get("type").String()
	if s.Type == "" {
		return Summary{}, fmt.Errorf("missing GeoJSON type in %s", path)
	}

	geoms := map[string]struct{}{}
	switch s.Type {
	case "FeatureCollection":
		features := root.Get("features").Array()
		s.FeatureCount = len(features)
		for _, f := range features {
			if g := f.Get("geometry.type").String(); g != "" {
				geoms[g] = struct{}{}
			}
		}
	case "Feature":
		s.FeatureCount = 1
		if g := root.Get("geometry.type").String(); g != "" {
			geoms[g] = struct{}{}
		}
	default:
		// A bare geometry object.
		s.FeatureCount = 1
		geoms[s.Type] = struct{}{}
	}

	for g := range geoms {
		s.GeometryTypes = append(s.GeometryTypes, g)
	}
	sort.Strings(s.GeometryTypes)

	return s, nil
}
