// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package fetcher materializes object-store files into an age-bounded local
// cache. The cache location is a deterministic function of the destination
// directory and the key's basename, which is what makes the freshness check
// work as a cache key.
package fetcher
