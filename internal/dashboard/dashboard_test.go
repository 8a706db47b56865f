// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/geoctlgo/internal/catalog"
)

func TestMemoKeyMatchesFetchPath(t *testing.T) {
	// The second entry's basename differs from its dataset name; the memo key
	// must follow the resolved key, not the name.
	deps := Deps{
		SessionDir: "/tmp/s",
		Catalog: catalog.New([]catalog.Dataset{
			{Name: "Population", KeyTemplate: "gis/{iso}/Population/Population.tif"},
			{Name: "lights", KeyTemplate: "gis/{iso}/Night_time_lights/Night_time_lights.tif"},
			{Name: "boundaries", KeyTemplate: "gis/{iso}/Country_boundaries.geojson"},
		}),
	}

	k, ok := memoKey(deps, "KEN", "Population")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/tmp/s", "KEN", "Population.tif")+"|std_dev", k)

	k, ok = memoKey(deps, "KEN", "lights")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/tmp/s", "KEN", "Night_time_lights.tif")+"|std_dev", k)

	// Only rasters are memoized; unknown names and missing regions never are.
	_, ok = memoKey(deps, "KEN", "boundaries")
	assert.False(t, ok)
	_, ok = memoKey(deps, "KEN", "nope")
	assert.False(t, ok)
	_, ok = memoKey(deps, "", "Population")
	assert.False(t, ok)
}

func TestPreviewDest(t *testing.T) {
	deps := Deps{SessionDir: "/tmp/s"}
	assert.Equal(t, filepath.Join("/tmp/s", "KEN"),
		deps.previewDest("KEN", "Population", catalog.KindRaster))
	assert.Equal(t, filepath.Join("/tmp/s", "KEN", "Private benefits"),
		deps.previewDest("KEN", "Private benefits", catalog.KindCSV))
}

func TestCsvPreview(t *testing.T) {
	p := filepath.Join(t.TempDir(), "KEN.csv")
	require.NoError(t, os.WriteFile(p, []byte("iso,value\nKEN,1\nKEN,2\n"), 0o600))

	msg := csvPreview(p)
	pm, ok := msg.(previewMsg)
	require.True(t, ok, "expected a previewMsg, got %T", msg)

	require.Len(t, pm.columns, 2)
	assert.Equal(t, "iso", pm.columns[0].Title)
	assert.Len(t, pm.rows, 2)
	assert.Equal(t, "2", pm.rows[1][1])
}

func TestCsvPreviewMissingFile(t *testing.T) {
	msg := csvPreview(filepath.Join(t.TempDir(), "nope.csv"))
	_, ok := msg.(errMsg)
	assert.True(t, ok)
}

func TestVectorPreview(t *testing.T) {
	p := filepath.Join(t.TempDir(), "boundary.geojson")
	require.NoError(t, os.WriteFile(p, []byte(`{"type":"FeatureCollection","features":[]}`), 0o600))

	msg := vectorPreview(p)
	pm, ok := msg.(previewMsg)
	require.True(t, ok)
	assert.Contains(t, pm.text, "FeatureCollection")
	assert.Contains(t, pm.text, "boundary")
}
