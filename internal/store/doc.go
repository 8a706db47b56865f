// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package store defines the object-store collaborator interface and its S3
// implementation.
package store
