// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"path"
	"strings"
)

// Kind classifies how a dataset file is previewed.
type Kind int

const (
	KindUnsupported Kind = iota
	KindCSV
	KindRaster
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindCSV:
		return "csv"
	case KindRaster:
		return "raster"
	case KindVector:
		return "vector"
	}
	return "unsupported"
}

// isoPlaceholder marks where the region code is substituted into a key
// template.
const isoPlaceholder = "{iso}"

// Dataset names a visualizable file and the key template that locates it.
type Dataset struct {
	Name        string
	KeyTemplate string
}

// Kind classifies the dataset by its key extension.
func (d Dataset) Kind() Kind {
	return KindOf(d.KeyTemplate)
}

// Prefixes are the top-level folders the catalog hangs off of.
type Prefixes struct {
	GIS            string
	SocioEconomic  string
	TechnoEconomic string
}

// Catalog is an ordered dataset table.
type Catalog struct {
	datasets []Dataset
}

// New builds a catalog from explicit entries.
func New(datasets []Dataset) Catalog {
	return Catalog{datasets: datasets}
}

// Default is the built-in dataset table: administrative boundaries, biogas
// and biomass rasters, demographics, electricity, LPG travel time, and the
// socio/techno-economic benefit CSVs.
func Default(p Prefixes) Catalog {
	gis := func(rest string) string {
		return path.Join(p.GIS, isoPlaceholder, rest)
	}

	datasets := []Dataset{
		{Name: "country_boundaries", KeyTemplate: gis("Administrative/Country_boundaries/Country_boundaries.geojson")},
		{Name: "buffaloes", KeyTemplate: gis("Biogas/Livestock/buffaloes/buffaloes.tif")},
		{Name: "cattles", KeyTemplate: gis("Biogas/Livestock/cattles/cattles.tif")},
		{Name: "goats", KeyTemplate: gis("Biogas/Livestock/goats/goats.tif")},
		{Name: "pigs", KeyTemplate: gis("Biogas/Livestock/pigs/pigs.tif")},
		{Name: "poultry", KeyTemplate: gis("Biogas/Livestock/poultry/poultry.tif")},
		{Name: "sheeps", KeyTemplate: gis("Biogas/Livestock/sheeps/sheeps.tif")},
		{Name: "Temperature", KeyTemplate: gis("Biogas/Temperature/Temperature.tif")},
		{Name: "Water scarcity", KeyTemplate: gis("Biogas/Water scarcity/Water scarcity.tif")},
		{Name: "Forest", KeyTemplate: gis("Biomass/Forest/Forest.tif")},
		{Name: "Friction", KeyTemplate: gis("Biomass/Friction/Friction.tif")},
		{Name: "Population", KeyTemplate: gis("Demographics/Population/Population.tif")},
		{Name: "Urban", KeyTemplate: gis("Demographics/Urban/Urban.tif")},
		{Name: "MV_lines", KeyTemplate: gis("Electricity/MV_lines/MV_lines.geojson")},
		{Name: "Night_time_lights", KeyTemplate: gis("Electricity/Night_time_lights/Night_time_lights.tif")},
		{Name: "Traveltime", KeyTemplate: gis("LPG/Traveltime/Traveltime.tif")},
		{Name: "Socio-economic Private benefits", KeyTemplate: path.Join(p.SocioEconomic, "Private benefits", isoPlaceholder+".csv")},
		{Name: "Socio-economic Social benefits", KeyTemplate: path.Join(p.SocioEconomic, "Social benefits", isoPlaceholder+".csv")},
		{Name: "Techno-economic Private benefits", KeyTemplate: path.Join(p.TechnoEconomic, "Private benefits", isoPlaceholder+"_file_tech_specs.csv")},
		{Name: "Techno-economic Social benefits", KeyTemplate: path.Join(p.TechnoEconomic, "Social benefits", isoPlaceholder+"_file_tech_specs.csv")},
	}

	return Catalog{datasets: datasets}
}

// Datasets returns the ordered entries.
func (c Catalog) Datasets() []Dataset {
	return c.datasets
}

// Names returns the dataset names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.datasets))
	for i, d := range c.datasets {
		names[i] = d.Name
	}
	return names
}

// Get looks a dataset up by name.
func (c Catalog) Get(name string) (Dataset, bool) {
	for _, d := range c.datasets {
		if d.Name == name {
			return d, true
		}
	}
	return Dataset{}, false
}

// Resolve substitutes the region code into the named dataset's key template.
func (c Catalog) Resolve(name, iso string) (string, error) {
	if iso == "" {
		return "", fmt.Errorf("no region code selected")
	}
	d, ok := c.Get(name)
	if !ok {
		return "", fmt.Errorf("unknown dataset: %s", name)
	}
	return strings.ReplaceAll(d.KeyTemplate, isoPlaceholder, iso), nil
}

// KindOf classifies an object key or file path by extension.
func KindOf(key string) Kind {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(key), "."))
	switch ext {
	case "csv":
		return KindCSV
	case "tif", "tiff", "gtiff":
		return KindRaster
	case "geojson", "shp":
		return KindVector
	}
	return KindUnsupported
}
