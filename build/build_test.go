package build_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/filtra/alphashape"
	"github.com/katalvlaran/filtra/build"
	"github.com/katalvlaran/filtra/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tetraDecomposition is the reference scenario: four points forming one
// tetrahedron, emitted as 4 vertices (alpha 0), 6 edges (0.1), 4 facets
// (0.2) and 1 cell (0.3), in that order. Handles are deliberately sparse
// and unordered to exercise relabeling.
func tetraDecomposition() *alphashape.Decomposition {
	h := []alphashape.VertexHandle{907, 13, 405, 66}
	dec := &alphashape.Decomposition{}

	add := func(o alphashape.Object, alpha float64) {
		dec.Objects = append(dec.Objects, o)
		dec.Alphas = append(dec.Alphas, alpha)
	}

	for _, v := range h {
		add(alphashape.NewVertex(v), 0)
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			add(alphashape.NewEdge(h[i], h[j]), 0.1)
		}
	}
	add(alphashape.NewFacet(h[0], h[1], h[2]), 0.2)
	add(alphashape.NewFacet(h[0], h[1], h[3]), 0.2)
	add(alphashape.NewFacet(h[0], h[2], h[3]), 0.2)
	add(alphashape.NewFacet(h[1], h[2], h[3]), 0.2)
	add(alphashape.NewCell(h[0], h[1], h[2], h[3]), 0.3)

	return dec
}

// TestBuild_TetrahedronScenario builds a full tetrahedron: exact
// per-dimension counts, dimension 3, max filtration 0.3.
func TestBuild_TetrahedronScenario(t *testing.T) {
	cx, reg, stats, err := build.Build(tetraDecomposition())
	require.NoError(t, err)

	assert.Equal(t, build.Stats{Vertices: 4, Edges: 6, Facets: 4, Cells: 1}, *stats)
	assert.Equal(t, 15, cx.Len())
	assert.Equal(t, 3, cx.Dimension())
	assert.Equal(t, 0.3, cx.MaxFiltration())
	assert.Equal(t, 4, reg.Len())
	assert.True(t, cx.Frozen(), "Build must freeze the complex")

	// Count entries per dimension.
	perDim := map[int]int{}
	for i := 0; i < cx.Len(); i++ {
		perDim[cx.At(i).Dim()]++
	}
	assert.Equal(t, map[int]int{0: 4, 1: 6, 2: 4, 3: 1}, perDim)
}

// TestBuild_IsolatedPoint builds from a single vertex object at alpha 0.
func TestBuild_IsolatedPoint(t *testing.T) {
	dec := &alphashape.Decomposition{
		Objects: []alphashape.Object{alphashape.NewVertex(42)},
		Alphas:  []float64{0},
	}

	cx, reg, stats, err := build.Build(dec)
	require.NoError(t, err)

	assert.Equal(t, 1, cx.Len())
	assert.Equal(t, 0, cx.Dimension())
	assert.Equal(t, 0.0, cx.MaxFiltration())
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, 1, stats.Vertices)
}

// TestBuild_DenseIdentityCoverage verifies that assigned identities cover
// [0, V) gaplessly in first-encounter order and resolve consistently.
func TestBuild_DenseIdentityCoverage(t *testing.T) {
	cx, reg, _, err := build.Build(tetraDecomposition())
	require.NoError(t, err)

	seen := map[core.VertexID]bool{}
	for i := 0; i < cx.Len(); i++ {
		for _, id := range cx.At(i).Vertices {
			assert.GreaterOrEqual(t, int(id), 0)
			assert.Less(t, int(id), reg.Len())
			seen[id] = true
		}
	}
	assert.Len(t, seen, reg.Len(), "identities must cover [0, V) with no gaps")

	// First-encounter order: the vertex objects were emitted first, so
	// handle 907 got identity 0, handle 13 identity 1, and so on.
	for want, h := range []alphashape.VertexHandle{907, 13, 405, 66} {
		got, ok := reg.Handle(core.VertexID(want))
		require.True(t, ok)
		assert.Equal(t, h, got)
	}
	_, ok := reg.Handle(4)
	assert.False(t, ok, "identity beyond the registry must not resolve")
}

// TestRegistry_Referential verifies that resolving the same handle twice
// anywhere in one run yields the same identity.
func TestRegistry_Referential(t *testing.T) {
	reg := build.NewRegistry()
	a := reg.Resolve(1000)
	b := reg.Resolve(-5)
	assert.Equal(t, core.VertexID(0), a)
	assert.Equal(t, core.VertexID(1), b)

	assert.Equal(t, a, reg.Resolve(1000), "re-resolving must be stable")
	assert.Equal(t, b, reg.Resolve(-5), "re-resolving must be stable")
	assert.Equal(t, 2, reg.Len())
}

// TestBuild_AlphaDesync verifies the hard abort on sequence length
// mismatch, in both directions.
func TestBuild_AlphaDesync(t *testing.T) {
	dec := tetraDecomposition()
	dec.Alphas = dec.Alphas[:len(dec.Alphas)-1] // alpha sequence exhausted early
	_, _, _, err := build.Build(dec)
	assert.ErrorIs(t, err, build.ErrAlphaDesync)

	dec = tetraDecomposition()
	dec.Alphas = append(dec.Alphas, 0.4) // trailing alpha without object
	_, _, _, err = build.Build(dec)
	assert.ErrorIs(t, err, build.ErrAlphaDesync)

	_, _, _, err = build.Build(nil)
	assert.ErrorIs(t, err, build.ErrNilDecomposition)
}

// TestBuild_UnknownObject verifies the fatal contract violation for a kind
// outside the closed set.
func TestBuild_UnknownObject(t *testing.T) {
	dec := &alphashape.Decomposition{
		Objects: []alphashape.Object{{}}, // zero Object: invalid kind
		Alphas:  []float64{0},
	}
	_, _, _, err := build.Build(dec)
	assert.ErrorIs(t, err, build.ErrUnknownObject)
}

// TestExtract_PreservesOrder verifies classification and handle order for
// each kind.
func TestExtract_PreservesOrder(t *testing.T) {
	dim, verts, err := build.Extract(alphashape.NewCell(9, 2, 7, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, dim)
	assert.Equal(t, []alphashape.VertexHandle{9, 2, 7, 2}, verts,
		"no reordering, no deduplication at extraction")

	dim, verts, err = build.Extract(alphashape.NewVertex(5))
	require.NoError(t, err)
	assert.Equal(t, 0, dim)
	assert.Equal(t, []alphashape.VertexHandle{5}, verts)
}

// TestBuild_RawVersusSqrtFiltration verifies the explicit filtration
// policy option.
func TestBuild_RawVersusSqrtFiltration(t *testing.T) {
	dec := tetraDecomposition()

	raw, _, _, err := build.Build(dec)
	require.NoError(t, err)
	assert.Equal(t, 0.3, raw.MaxFiltration(), "default policy is the raw alpha value")

	rooted, _, _, err := build.Build(dec, build.WithSqrtFiltration())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(0.3), rooted.MaxFiltration(), 1e-12)
}

// TestBuild_WithoutSort verifies that emission order survives when the
// ordering pass is skipped.
func TestBuild_WithoutSort(t *testing.T) {
	dec := &alphashape.Decomposition{
		Objects: []alphashape.Object{
			alphashape.NewVertex(1),
			alphashape.NewVertex(2),
			alphashape.NewEdge(1, 2),
			alphashape.NewVertex(3), // out of filtration order on purpose
		},
		Alphas: []float64{0, 0, 0.5, 0},
	}

	cx, _, _, err := build.Build(dec, build.WithoutSort())
	require.NoError(t, err)
	assert.Equal(t, 1, cx.At(2).Dim(), "emission order preserved")

	cx, _, _, err = build.Build(dec)
	require.NoError(t, err)
	assert.Equal(t, 1, cx.At(3).Dim(), "ordering pass moves the edge last")
}

// TestBuild_OrderingProperty: for random valid alpha assignments that
// respect face ≤ coface, the ordered complex never places a coface before
// one of its faces.
func TestBuild_OrderingProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))

	for trial := 0; trial < 25; trial++ {
		dec := randomValidDecomposition(rng)
		cx, _, _, err := build.Build(dec)
		require.NoError(t, err)

		seen := map[[4]core.VertexID]bool{}
		for i := 0; i < cx.Len(); i++ {
			s := cx.At(i)
			for drop := 0; drop < len(s.Vertices) && len(s.Vertices) > 1; drop++ {
				face := make([]core.VertexID, 0, 3)
				for j, v := range s.Vertices {
					if j != drop {
						face = append(face, v)
					}
				}
				assert.True(t, seen[idKey(face)],
					"trial %d: coface %v ordered before face %v", trial, s.Vertices, face)
			}
			seen[idKey(s.Vertices)] = true
		}
	}
}

// randomValidDecomposition emits the full face lattice of a tetrahedron
// with random alphas satisfying face ≤ coface, in face-closed random order.
func randomValidDecomposition(rng *rand.Rand) *alphashape.Decomposition {
	h := []alphashape.VertexHandle{10, 20, 30, 40}

	type entry struct {
		obj   alphashape.Object
		alpha float64
	}
	var entries []entry

	vertexAlpha := map[alphashape.VertexHandle]float64{}
	for _, v := range h {
		a := rng.Float64() * 0.1
		vertexAlpha[v] = a
		entries = append(entries, entry{alphashape.NewVertex(v), a})
	}
	edgeAlpha := map[[2]int]float64{}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			a := math.Max(vertexAlpha[h[i]], vertexAlpha[h[j]]) + rng.Float64()*0.1
			edgeAlpha[[2]int{i, j}] = a
			entries = append(entries, entry{alphashape.NewEdge(h[i], h[j]), a})
		}
	}
	var cellAlpha float64
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			for k := j + 1; k < 4; k++ {
				a := edgeAlpha[[2]int{i, j}]
				a = math.Max(a, edgeAlpha[[2]int{i, k}])
				a = math.Max(a, edgeAlpha[[2]int{j, k}])
				a += rng.Float64() * 0.1
				cellAlpha = math.Max(cellAlpha, a)
				entries = append(entries, entry{alphashape.NewFacet(h[i], h[j], h[k]), a})
			}
		}
	}
	entries = append(entries, entry{alphashape.NewCell(h[0], h[1], h[2], h[3]), cellAlpha + rng.Float64()*0.1})

	// The ordering pass sorts by value; emission order may be arbitrary.
	rng.Shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })

	dec := &alphashape.Decomposition{}
	for _, e := range entries {
		dec.Objects = append(dec.Objects, e.obj)
		dec.Alphas = append(dec.Alphas, e.alpha)
	}

	return dec
}

// idKey builds a canonical fixed-size key from an identity tuple.
func idKey(ids []core.VertexID) [4]core.VertexID {
	sorted := make([]core.VertexID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	key := [4]core.VertexID{-1, -1, -1, -1}
	copy(key[:], sorted)

	return key
}
