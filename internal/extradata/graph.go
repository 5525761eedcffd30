package extradata

import "sort"

// graph is the disjointness graph for one bit-width group: vertices are
// field names and an edge connects two fields whose applicability sets share
// no block, meaning they may be stored in the same slot.
//
// Vertices keep a fixed order (sorted field names); the cover search and
// contraction both depend on that order being stable, and it is what makes
// slot assignment deterministic across runs.
type graph struct {
	verts []string
	edges map[string]map[string]struct{}
}

// newGraph creates an edgeless graph over the given vertices, in order.
func newGraph(verts []string) *graph {
	g := &graph{
		verts: verts,
		edges: make(map[string]map[string]struct{}, len(verts)),
	}
	for _, v := range verts {
		g.edges[v] = make(map[string]struct{})
	}
	return g
}

// disjointnessGraph builds the graph for one width group's applicability
// sets.
func disjointnessGraph(fields map[string]blockSet) *graph {
	verts := make([]string, 0, len(fields))
	for name := range fields {
		verts = append(verts, name)
	}
	sort.Strings(verts)

	g := newGraph(verts)
	for i, a := range verts {
		for _, b := range verts[i+1:] {
			if fields[a].disjoint(fields[b]) {
				g.addEdge(a, b)
			}
		}
	}
	return g
}

func (g *graph) addEdge(a, b string) {
	g.edges[a][b] = struct{}{}
	g.edges[b][a] = struct{}{}
}

func (g *graph) removeEdge(a, b string) {
	delete(g.edges[a], b)
	delete(g.edges[b], a)
}

func (g *graph) hasEdge(a, b string) bool {
	_, ok := g.edges[a][b]
	return ok
}

func (g *graph) degree(v string) int {
	return len(g.edges[v])
}

// firstNeighbor returns v's neighbor that comes earliest in vertex order.
// The caller must ensure v has at least one edge.
func (g *graph) firstNeighbor(v string) string {
	adj := g.edges[v]
	for _, u := range g.verts {
		if _, ok := adj[u]; ok {
			return u
		}
	}
	panic("extradata: firstNeighbor called on edgeless vertex")
}

// contract returns a new graph that merges v1 into v0 for clique-cover
// purposes: v1 is removed, and v0 keeps an edge to a third vertex only if
// both v0 and v1 had one, so any clique containing v0 in the contracted
// graph remains a clique of the original once v1 is re-added to it. This is
// the complement of contracting (v0, v1) in the complement graph. The
// receiver is left untouched.
func (g *graph) contract(v0, v1 string) *graph {
	verts := make([]string, 0, len(g.verts)-1)
	for _, v := range g.verts {
		if v != v1 {
			verts = append(verts, v)
		}
	}

	c := newGraph(verts)
	for _, u := range verts {
		for w := range g.edges[u] {
			if w == v1 || w <= u {
				continue
			}
			if u == v0 && !g.hasEdge(v1, w) {
				continue
			}
			if w == v0 && !g.hasEdge(v1, u) {
				continue
			}
			c.addEdge(u, w)
		}
	}
	return c
}
