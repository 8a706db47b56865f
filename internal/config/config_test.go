// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points GEOCTL_CFG at a testdata file and resets the global
// Config so the next getter forces a reload.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	configPath := filepath.Join("testdata", testdataFile)
	absPath, err := filepath.Abs(configPath)
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("GEOCTL_CFG", absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotEmpty(t, cfg.Source)
	assert.Equal(t, "my-bucket", cfg.Data["bucket"])
	assert.Equal(t, "us-east-1", cfg.Data["region"])
}

func TestGetString(t *testing.T) {
	setupTestConfig(t, "simple.yaml")
	_, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name    string
		key     string
		def     []string
		want    string
		wantErr bool
	}{
		{name: "top level", key: "bucket", want: "my-bucket"},
		{name: "dotted path", key: "prefixes.gis", want: "gis_data"},
		{name: "missing with default", key: "nope", def: []string{"fallback"}, want: "fallback"},
		{name: "missing without default", key: "nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetString(tt.key, tt.def...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	setupTestConfig(t, "simple.yaml")
	_, err := Load()
	require.NoError(t, err)

	got, err := GetInt("cache.ttl-hours")
	assert.NoError(t, err)
	assert.Equal(t, 24, got)

	got, err = GetInt("cache.missing", 48)
	assert.NoError(t, err)
	assert.Equal(t, 48, got)
}

func TestGetStringSlice(t *testing.T) {
	setupTestConfig(t, "nested.yaml")
	_, err := Load()
	require.NoError(t, err)

	got, err := GetStringSlice("datasets")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Population=gis_data/{iso}/Demographics/Population/Population.tif", got[0])

	// Missing key falls back to the default.
	got, err = GetStringSlice("nope", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	// A scalar is not a list.
	_, err = GetStringSlice("output")
	assert.Error(t, err)
}

func TestNamespacedLookup(t *testing.T) {
	setupTestConfig(t, "nested.yaml")

	cfg, err := Load("fetch")
	require.NoError(t, err)
	assert.Equal(t, "fetch", cfg.Namespace)

	// Namespaced key wins over the root key.
	got, err := GetString("output")
	assert.NoError(t, err)
	assert.Equal(t, "json", got)

	// Keys absent from the namespace fall back to the root.
	_, err = Load("range")
	require.NoError(t, err)
	got, err = GetString("output")
	assert.NoError(t, err)
	assert.Equal(t, "text", got)
}
