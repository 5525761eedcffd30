package extradata

import "math"

// findCliqueCover partitions the graph's vertices into the minimum number of
// cliques. Within a clique every pair of fields has disjoint applicability,
// so the whole clique can share one storage slot.
//
// Minimum clique cover is minimum coloring of the complement graph and is
// NP-hard, so this is a branch-and-bound search over complement contraction:
// pick an edge (v0, v1), try merging the endpoints into one clique (solve
// the contracted graph), then try keeping them apart (solve with the edge
// removed, bounded by the merge result). Exponential in the worst case,
// which is acceptable because a width group holds tens of fields at most.
// Exactness is required; there is no heuristic fallback.
func findCliqueCover(g *graph) [][]string {
	// The bound is "strictly better than", so MaxInt accepts any cover.
	return coverSearch(g, math.MaxInt)
}

// coverSearch returns a cover of size < bestSize, or nil if none exists.
//
// The returned cover is ordered: clique i contains g.verts[i] for every
// index up to and including the branch vertex, which is what lets the caller
// re-add the merged vertex to the right clique after contraction. Sibling
// branches see the graph exactly as it was: the only in-place mutation is
// the edge removal for the second branch, restored on every path, and
// contraction builds a fresh graph.
func coverSearch(g *graph, bestSize int) [][]string {
	for i, v0 := range g.verts {
		// Each vertex scanned so far needs a clique of its own at minimum;
		// once that can no longer beat the best known cover, give up.
		if i >= bestSize-1 {
			return nil
		}
		if g.degree(v0) == 0 {
			continue
		}
		v1 := g.firstNeighbor(v0)

		// Branch A: v0 and v1 share a clique.
		merged := coverSearch(g.contract(v0, v1), bestSize)
		bound := bestSize
		if merged != nil {
			bound = len(merged)
		}

		// Branch B: v0 and v1 are forced into different cliques, and must
		// beat branch A's result to matter.
		g.removeEdge(v0, v1)
		split := coverSearch(g, bound)
		g.addEdge(v0, v1)

		if split != nil {
			return split
		}
		if merged != nil {
			merged[i] = append(merged[i], v1)
		}
		return merged
	}

	// No edges left: every remaining vertex is its own singleton clique.
	cover := make([][]string, len(g.verts))
	for i, v := range g.verts {
		cover[i] = []string{v}
	}
	return cover
}
