// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proximity

import (
	"slices"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// kdPoint adapts a point to the kdtree Comparable interface,
// keeping the index of the point in the input slice.
type kdPoint struct {
	idx int
	v   [3]float64
}

func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kdPoint)
	return p.v[d] - q.v[d]
}

func (p kdPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance, as kdtree expects.
func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(kdPoint)
	var sum float64
	for i := range p.v {
		d := p.v[i] - q.v[i]
		sum += d * d
	}
	return sum
}

// appendKDTree finds the same edges as appendNaive using a radius
// search per point. Results are sorted so both strategies agree.
func appendKDTree(edges []Edge, points []Point, threshold float32) []Edge {
	if threshold <= 0 || len(points) < 2 {
		return edges
	}
	kps := make([]kdPoint, len(points))
	t := &kdtree.Tree{}
	for i, p := range points {
		kps[i] = kdPoint{idx: i, v: [3]float64{float64(p.Pos.X), float64(p.Pos.Y), float64(p.Pos.Z)}}
		t.Insert(kps[i], false)
	}
	r2 := float64(threshold) * float64(threshold)
	start := len(edges)
	for i, q := range kps {
		k := kdtree.NewDistKeeper(r2)
		t.NearestSet(k, q)
		for _, cd := range k.Heap {
			if cd.Comparable == nil {
				continue
			}
			j := cd.Comparable.(kdPoint).idx
			if j <= i {
				continue
			}
			// confirm in float32, the same precision the naive scan uses
			d := points[i].Pos.Sub(points[j].Pos).Length()
			if d < threshold {
				edges = append(edges, newEdge(points, i, j, d, threshold))
			}
		}
	}
	slices.SortFunc(edges[start:], func(a, b Edge) int {
		if a.FromIndex != b.FromIndex {
			return a.FromIndex - b.FromIndex
		}
		return a.ToIndex - b.ToIndex
	})
	return edges
}
