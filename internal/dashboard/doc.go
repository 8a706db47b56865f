// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package dashboard is the interactive viewer: region and dataset selectors
// on the left, a preview of the fetched file on the right. It owns session
// state and memoization so the packages underneath stay stateless.
package dashboard
