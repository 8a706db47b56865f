// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ParseObjectURL splits an s3://bucket/key URL into its bucket and key.
// The key must be non-empty; a bare bucket URL is an error.
func ParseObjectURL(raw string) (bucket string, key string, err error) {
	rest, ok := strings.CutPrefix(raw, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3:// URL: %s", raw)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("expected s3://bucket/key, got: %s", raw)
	}
	return bucket, key, nil
}

// BaseName returns the final segment of a slash-delimited object key.
func BaseName(key string) string {
	return path.Base(key)
}

// LayerName derives a display name from a file path: the basename without
// its extension.
func LayerName(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SessionDir resolves the session-scoped download directory.
// Precedence:
//  1. GEOCTL_CACHE_DIR, if set and non-empty
//  2. os.TempDir()/geoctl-session
func SessionDir() string {
	if d, ok := os.LookupEnv("GEOCTL_CACHE_DIR"); ok && d != "" {
		return d
	}
	return filepath.Join(os.TempDir(), "geoctl-session")
}
