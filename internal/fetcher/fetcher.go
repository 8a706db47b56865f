// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fetcher

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/apex/log"

	"github.com/staranto/geoctlgo/internal/store"
)

// DefaultTTL is the freshness window: a cached file older than this is
// considered stale and re-downloaded.
const DefaultTTL = 24 * time.Hour

// Options tunes a Fetch call.
type Options struct {
	// TTL overrides the freshness window. Zero or negative means DefaultTTL.
	TTL time.Duration
}

// FilesystemError wraps a failure to create or write beneath the destination
// directory.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem error at %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// LocalPath returns the deterministic cache location for a key: the key's
// final segment beneath destDir. Directory components of the key are
// discarded; destDir is expected to carry the disambiguating context
// (region code, dataset name).
func LocalPath(destDir, key string) string {
	return filepath.Join(destDir, path.Base(key))
}

// Enabled returns true unless GEOCTL_CACHE explicitly disables the cache
// ("0"/"false"). A disabled cache skips the freshness check, so every Fetch
// downloads.
func Enabled() bool {
	enabled, _ := os.LookupEnv("GEOCTL_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// Fetch ensures a fresh local copy of bucket/key beneath destDir and returns
// its path. A file that exists and is younger than the freshness window is
// returned without touching the network; otherwise the object is downloaded
// in full, overwriting any stale copy. GEOCTL_CACHE=0 disables the cache,
// forcing a download on every call.
//
// The staleness check compares the file's mtime against wall-clock now, so a
// system clock change can misclassify a file. Callers share no locking: two
// concurrent fetches of the same stale key both download, last writer wins.
// Acceptable for a single-user interactive session.
func Fetch(ctx context.Context, st store.Store, bucket, key, destDir string, opts Options) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty object key")
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil { //nolint:mnd
		return "", &FilesystemError{Path: destDir, Err: err}
	}

	localPath := LocalPath(destDir, key)
	if Enabled() {
		if fi, err := os.Stat(localPath); err == nil && time.Since(fi.ModTime()) < ttl {
			log.Debugf("cache hit: %s", localPath)
			return localPath, nil
		}
	}

	log.Debugf("downloading s3://%s/%s to %s", bucket, key, localPath)
	if err := download(ctx, st, bucket, key, localPath); err != nil {
		return "", err
	}

	return localPath, nil
}

// download transfers the object to a sibling temp file and renames it into
// place, so a failed transfer never leaves a half-written file with a fresh
// mtime behind.
func download(ctx context.Context, st store.Store, bucket, key, localPath string) error {
	tmp, err := os.CreateTemp(filepath.Dir(localPath), path.Base(key)+".partial-*")
	if err != nil {
		return &FilesystemError{Path: localPath, Err: err}
	}

	if err := st.Download(ctx, bucket, key, tmp); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return &FilesystemError{Path: tmp.Name(), Err: err}
	}

	if err := os.Rename(tmp.Name(), localPath); err != nil {
		_ = os.Remove(tmp.Name())
		return &FilesystemError{Path: localPath, Err: err}
	}

	return nil
}

// Purge removes files under dir older than maxAge. Best effort: individual
// removal failures are logged and skipped. A maxAge <= 0 disables purging.
func Purge(dir string, maxAge time.Duration) error {
	if maxAge <= 0 {
		log.Debug("cache purging disabled")
		return nil
	}
	if _, err := os.Stat(dir); err != nil {
		return nil
	}
	if err := filepath.Walk(dir, func(p string, info os.FileInfo, _ error) error {
		if info == nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(p); err == nil {
				log.Debugf("removed cache file %s", p)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", p)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}
