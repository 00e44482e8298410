// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proximity builds the transient graph of edges connecting
// point entities that are closer than a distance threshold. The graph
// is rebuilt from scratch every frame; nothing is carried across frames.
package proximity

import (
	"cogentcore.org/core/math32"
)

// Point is a positioned entity considered for proximity edges.
type Point struct {
	ID  string
	Pos math32.Vector3
}

// Edge connects two points closer than the threshold.
// Opacity falls off linearly from 1 at zero distance
// to 0 at the threshold.
type Edge struct {
	From, To string

	// FromIndex and ToIndex are the indexes of the points in the
	// input slice, with FromIndex < ToIndex.
	FromIndex, ToIndex int

	Distance float32
	Opacity  float32
}

// Strategies select the algorithm used to find candidate pairs.
type Strategies int32

const (
	// Naive is the O(N²) scan over all unordered pairs,
	// which is the right choice for tens of points.
	Naive Strategies = iota

	// KDTree uses a k-d tree radius search, for larger point sets.
	KDTree
)

func (s Strategies) String() string {
	switch s {
	case Naive:
		return "naive"
	case KDTree:
		return "kdtree"
	}
	return "unknown"
}

// Opacity returns the edge opacity for the given distance and threshold.
func Opacity(dist, threshold float32) float32 {
	if threshold <= 0 {
		return 0
	}
	return 1 - dist/threshold
}

// Build returns the edges for all unordered pairs of points with
// Euclidean distance strictly less than threshold, ordered by
// (FromIndex, ToIndex). A non-positive threshold or fewer than two
// points yields no edges.
func Build(points []Point, threshold float32) []Edge {
	return appendNaive(nil, points, threshold)
}

func appendNaive(edges []Edge, points []Point, threshold float32) []Edge {
	if threshold <= 0 || len(points) < 2 {
		return edges
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := points[i].Pos.Sub(points[j].Pos).Length()
			if d < threshold {
				edges = append(edges, newEdge(points, i, j, d, threshold))
			}
		}
	}
	return edges
}

func newEdge(points []Point, i, j int, d, threshold float32) Edge {
	return Edge{
		From:      points[i].ID,
		To:        points[j].ID,
		FromIndex: i,
		ToIndex:   j,
		Distance:  d,
		Opacity:   Opacity(d, threshold),
	}
}

// Builder rebuilds the edge list once per frame, reusing its
// backing storage. The returned slice is only valid until
// the next call to [Builder.Build].
type Builder struct {

	// Threshold is the connection distance.
	Threshold float32

	// Strategy is the pair search algorithm.
	Strategy Strategies

	edges []Edge
}

// NewBuilder returns a new naive builder for the given threshold.
func NewBuilder(threshold float32) *Builder {
	return &Builder{Threshold: threshold}
}

// Build replaces the previous frame's edges with the edges
// for the given points.
func (b *Builder) Build(points []Point) []Edge {
	b.edges = b.edges[:0]
	switch b.Strategy {
	case KDTree:
		b.edges = appendKDTree(b.edges, points, b.Threshold)
	default:
		b.edges = appendNaive(b.edges, points, b.Threshold)
	}
	return b.edges
}

// Edges returns the edges from the last call to [Builder.Build].
func (b *Builder) Edges() []Edge {
	return b.edges
}
