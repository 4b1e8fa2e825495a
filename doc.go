// Copyright 2021 Joshua J Baker. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rtree implements an in-memory R-tree: a height-balanced spatial
// index over axis-aligned rectangles, supporting insertion, deletion,
// intersection search, full scan, and O(1) structural clone via
// copy-on-write node sharing.
//
// A Tree is single-writer, multi-reader across snapshots: Clone produces
// an independent handle in O(1) by sharing the existing node graph and
// bumping reference counts, and every mutating path privatises (copies)
// a shared node the instant before it touches it. Two handles that share
// no outstanding mutation are safe to read concurrently; mutating the
// same handle from two goroutines is not.
package rtree
