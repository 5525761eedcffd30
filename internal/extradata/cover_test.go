package extradata

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCliqueCover(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		verts        []string
		edges        [][2]string
		expectedSize int
	}{
		{
			name:         "single vertex",
			verts:        []string{"a"},
			expectedSize: 1,
		},
		{
			name:         "path of three",
			verts:        []string{"f1", "f2", "f3"},
			edges:        [][2]string{{"f1", "f2"}, {"f2", "f3"}},
			expectedSize: 2,
		},
		{
			name:  "complete graph on four vertices",
			verts: []string{"a", "b", "c", "d"},
			edges: [][2]string{
				{"a", "b"}, {"a", "c"}, {"a", "d"},
				{"b", "c"}, {"b", "d"}, {"c", "d"},
			},
			expectedSize: 1,
		},
		{
			name:         "empty graph on four vertices",
			verts:        []string{"a", "b", "c", "d"},
			expectedSize: 4,
		},
		{
			name:  "five-cycle",
			verts: []string{"a", "b", "c", "d", "e"},
			edges: [][2]string{
				{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "e"}, {"e", "a"},
			},
			expectedSize: 3,
		},
		{
			name:  "two disjoint triangles",
			verts: []string{"a", "b", "c", "d", "e", "f"},
			edges: [][2]string{
				{"a", "b"}, {"b", "c"}, {"a", "c"},
				{"d", "e"}, {"e", "f"}, {"d", "f"},
			},
			expectedSize: 2,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g := newGraph(tc.verts)
			for _, e := range tc.edges {
				g.addEdge(e[0], e[1])
			}

			cover := findCliqueCover(g)

			assert.Len(t, cover, tc.expectedSize)
			assertValidCover(t, g, cover)

			// The search must leave the graph exactly as it found it.
			for _, e := range tc.edges {
				assert.True(t, g.hasEdge(e[0], e[1]), "edge (%s,%s) not restored", e[0], e[1])
			}
		})
	}
}

func TestFindCliqueCover_DeterministicResult(t *testing.T) {
	t.Parallel()

	build := func() *graph {
		g := newGraph([]string{"f1", "f2", "f3"})
		g.addEdge("f1", "f2")
		g.addEdge("f2", "f3")
		return g
	}

	first := findCliqueCover(build())
	second := findCliqueCover(build())

	require.Empty(t, cmp.Diff(first, second), "same input must produce the identical cover")
	assert.Equal(t, [][]string{{"f1", "f2"}, {"f3"}}, first)
}

// TestFindCliqueCover_MatchesBruteForce cross-checks minimality against
// exhaustive set-partition enumeration, rather than trusting the search's
// pruning arithmetic.
func TestFindCliqueCover_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	verts := []string{"a", "b", "c", "d", "e", "f"}

	for trial := 0; trial < 200; trial++ {
		g := newGraph(verts)
		var edges [][2]string
		for i := range verts {
			for j := i + 1; j < len(verts); j++ {
				if rng.Float64() < 0.45 {
					g.addEdge(verts[i], verts[j])
					edges = append(edges, [2]string{verts[i], verts[j]})
				}
			}
		}

		cover := findCliqueCover(g)
		want := bruteForceMinCoverSize(g)

		require.Len(t, cover, want, "trial %d, edges %v", trial, edges)
		assertValidCover(t, g, cover)
	}
}

// assertValidCover checks the partition property (every vertex in exactly
// one clique) and clique validity (every pair inside a clique is connected).
func assertValidCover(t *testing.T, g *graph, cover [][]string) {
	t.Helper()

	seen := make(map[string]int)
	for _, clique := range cover {
		require.NotEmpty(t, clique, "cover must not contain empty cliques")
		for _, v := range clique {
			seen[v]++
		}
		for i, a := range clique {
			for _, b := range clique[i+1:] {
				require.True(t, g.hasEdge(a, b), "clique %v contains non-adjacent pair (%s,%s)", clique, a, b)
			}
		}
	}

	require.Len(t, seen, len(g.verts), "cover must span the whole vertex set")
	for _, v := range g.verts {
		require.Equal(t, 1, seen[v], fmt.Sprintf("vertex %s must appear exactly once", v))
	}
}

// bruteForceMinCoverSize enumerates every partition of the vertex set and
// returns the size of the smallest one whose parts are all cliques.
func bruteForceMinCoverSize(g *graph) int {
	n := len(g.verts)
	best := n
	assign := make([]int, n)

	var recurse func(i, parts int)
	recurse = func(i, parts int) {
		if parts >= best {
			return
		}
		if i == n {
			best = parts
			return
		}
		for p := 0; p < parts; p++ {
			compatible := true
			for j := 0; j < i; j++ {
				if assign[j] == p && !g.hasEdge(g.verts[i], g.verts[j]) {
					compatible = false
					break
				}
			}
			if compatible {
				assign[i] = p
				recurse(i+1, parts)
			}
		}
		assign[i] = parts
		recurse(i+1, parts+1)
	}

	recurse(0, 0)
	return best
}
