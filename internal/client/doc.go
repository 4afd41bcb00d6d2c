// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive address search client runtime.
//
// It wires the terminal UI, the search coordinator and the background
// last-results persister into a single process lifecycle.
package client
