// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package aws wraps AWS SDK v2 config loading and S3 client construction.
package aws
