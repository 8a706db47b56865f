// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad(t *testing.T) {
	p := writeCSV(t, "iso,benefit,value\nKEN,private,1.5\nUGA,social,2.0\n")

	tbl, err := Load(p, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"iso", "benefit", "value"}, tbl.Header)
	assert.Len(t, tbl.Rows, 2)
	assert.False(t, tbl.Truncated)
	assert.Equal(t, []string{"UGA", "social", "2.0"}, tbl.Rows[1])
}

func TestLoadTruncates(t *testing.T) {
	p := writeCSV(t, "a\n1\n2\n3\n4\n")

	tbl, err := Load(p, 2)
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 2)
	assert.True(t, tbl.Truncated)
}

func TestLoadRaggedRows(t *testing.T) {
	p := writeCSV(t, "a,b\n1\n2,3,4\n")

	tbl, err := Load(p, 0)
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 2)
}

func TestLoadEmpty(t *testing.T) {
	p := writeCSV(t, "")
	_, err := Load(p, 0)
	assert.Error(t, err)
}
