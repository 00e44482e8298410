// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proximity

import (
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Clusters returns the connected components of the proximity graph
// over n points, as sorted slices of point indexes. Components are
// ordered by their smallest index. Isolated points form singleton
// clusters.
func Clusters(n int, edges []Edge) [][]int {
	if n <= 0 {
		return nil
	}
	g := simple.NewUndirectedGraph()
	for i := range n {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, e := range edges {
		if e.FromIndex == e.ToIndex || e.FromIndex >= n || e.ToIndex >= n {
			continue
		}
		g.SetEdge(g.NewEdge(g.Node(int64(e.FromIndex)), g.Node(int64(e.ToIndex))))
	}
	ccs := topo.ConnectedComponents(g)
	out := make([][]int, 0, len(ccs))
	for _, cc := range ccs {
		c := make([]int, len(cc))
		for i, nd := range cc {
			c[i] = int(nd.ID())
		}
		slices.Sort(c)
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })
	return out
}

// ClusterSizes returns, for each point index, the size of the
// cluster that the point belongs to.
func ClusterSizes(n int, edges []Edge) []int {
	sizes := make([]int, n)
	for _, c := range Clusters(n, edges) {
		for _, i := range c {
			sizes[i] = len(c)
		}
	}
	return sizes
}
