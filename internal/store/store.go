// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"io"
)

// Store is the object-store collaborator. Implementations stream whole
// objects and enumerate folder-like common prefixes. All failures are
// surfaced as *RemoteAccessError; nothing is retried here.
type Store interface {
	// Download streams the object at bucket/key into w.
	Download(ctx context.Context, bucket, key string, w io.Writer) error

	// ListCommonPrefixes returns the sorted folder names directly beneath
	// prefix, which must end with "/" to delimit at that level.
	ListCommonPrefixes(ctx context.Context, bucket, prefix string) ([]string, error)
}

// RemoteAccessError wraps any failure talking to the object store: a missing
// object, a credential problem, or a transport error. NotFound is set when
// the store reported the object does not exist.
type RemoteAccessError struct {
	Bucket   string
	Key      string
	NotFound bool
	Err      error
}

func (e *RemoteAccessError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("object not found: s3://%s/%s", e.Bucket, e.Key)
	}
	return fmt.Sprintf("remote access failed for s3://%s/%s: %v", e.Bucket, e.Key, e.Err)
}

func (e *RemoteAccessError) Unwrap() error { return e.Err }
