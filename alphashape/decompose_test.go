package alphashape_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/filtra/alphashape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// unitTetrahedron is the right-angle tetrahedron at the origin.
func unitTetrahedron() []r3.Vec {
	return []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
}

// countKinds tallies a decomposition by object kind.
func countKinds(dec *alphashape.Decomposition) map[alphashape.Kind]int {
	counts := make(map[alphashape.Kind]int)
	for _, o := range dec.Objects {
		counts[o.Kind()]++
	}

	return counts
}

// TestDecompose_Validation verifies the sentinel errors for bad clouds.
func TestDecompose_Validation(t *testing.T) {
	_, err := alphashape.Decompose(unitTetrahedron()[:3])
	assert.ErrorIs(t, err, alphashape.ErrTooFewPoints, "3 points cannot triangulate")

	coplanar := []r3.Vec{{X: 0}, {X: 1}, {Y: 1}, {X: 1, Y: 1}}
	_, err = alphashape.Decompose(coplanar)
	assert.ErrorIs(t, err, alphashape.ErrDegenerate, "coplanar cloud has no cell")

	dup := unitTetrahedron()
	dup = append(dup, dup[0])
	_, err = alphashape.Decompose(dup)
	assert.ErrorIs(t, err, alphashape.ErrDegenerate, "duplicate points are degenerate")
}

// TestDecompose_Tetrahedron checks counts, alphas and emission order on a
// single tetrahedron.
func TestDecompose_Tetrahedron(t *testing.T) {
	dec, err := alphashape.Decompose(unitTetrahedron())
	require.NoError(t, err)
	require.Equal(t, dec.Len(), len(dec.Alphas), "objects and alphas must stay parallel")

	counts := countKinds(dec)
	assert.Equal(t, 4, counts[alphashape.KindVertex])
	assert.Equal(t, 6, counts[alphashape.KindEdge])
	assert.Equal(t, 4, counts[alphashape.KindFacet])
	assert.Equal(t, 1, counts[alphashape.KindCell])

	// The cell's alpha is the squared circumradius of the tetrahedron:
	// center (½,½,½), r² = ¾.
	last := dec.Len() - 1
	assert.Equal(t, alphashape.KindCell, dec.Objects[last].Kind(), "cell must be emitted last")
	assert.InDelta(t, 0.75, dec.Alphas[last], 1e-12)

	// Vertices enter at alpha 0, axis edges at ¼ (half-length squared).
	assert.Equal(t, alphashape.KindVertex, dec.Objects[0].Kind())
	assert.Equal(t, 0.0, dec.Alphas[0])
	assert.Equal(t, alphashape.KindEdge, dec.Objects[4].Kind(), "edges follow the 4 vertices")
	assert.InDelta(t, 0.25, dec.Alphas[4], 1e-12)

	assert.True(t, sort.Float64sAreSorted(dec.Alphas), "alphas must be emitted ascending")
}

// TestDecompose_TetrahedronWithCentroid checks the 5-point cloud where the
// centroid splits the tetrahedron into four cells.
func TestDecompose_TetrahedronWithCentroid(t *testing.T) {
	points := append(unitTetrahedron(), r3.Vec{X: 0.25, Y: 0.25, Z: 0.25})
	dec, err := alphashape.Decompose(points)
	require.NoError(t, err)

	counts := countKinds(dec)
	assert.Equal(t, 5, counts[alphashape.KindVertex])
	assert.Equal(t, 10, counts[alphashape.KindEdge], "6 hull edges + 4 spokes")
	assert.Equal(t, 10, counts[alphashape.KindFacet], "4 hull facets + 6 inner")
	assert.Equal(t, 4, counts[alphashape.KindCell], "the enclosing tetrahedron is not Delaunay")
}

// TestDecompose_FaceBeforeCoface verifies on a random cloud that every
// object's proper faces are emitted before it.
func TestDecompose_FaceBeforeCoface(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := make([]r3.Vec, 10)
	for i := range points {
		points[i] = r3.Vec{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
	}

	dec, err := alphashape.Decompose(points)
	require.NoError(t, err)
	assert.True(t, sort.Float64sAreSorted(dec.Alphas), "alphas must be emitted ascending")

	seen := make(map[[4]alphashape.VertexHandle]bool)
	for _, obj := range dec.Objects {
		verts := obj.Vertices()
		if obj.Kind() != alphashape.KindVertex {
			// Every facet of this object (drop one handle) must be present.
			for drop := range verts {
				face := make([]alphashape.VertexHandle, 0, 3)
				for i, v := range verts {
					if i != drop {
						face = append(face, v)
					}
				}
				assert.True(t, seen[tupleKey(face)],
					"object %v emitted before its face %v", verts, face)
			}
		}
		seen[tupleKey(verts)] = true
	}
}

// tupleKey builds a canonical fixed-size key from a handle tuple.
func tupleKey(verts []alphashape.VertexHandle) [4]alphashape.VertexHandle {
	sorted := make([]alphashape.VertexHandle, len(verts))
	copy(sorted, verts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	key := [4]alphashape.VertexHandle{-1, -1, -1, -1}
	copy(key[:], sorted)

	return key
}

// TestObject_Vertices verifies order preservation and the invalid zero kind.
func TestObject_Vertices(t *testing.T) {
	e := alphashape.NewEdge(7, 3)
	assert.Equal(t, []alphashape.VertexHandle{7, 3}, e.Vertices(), "engine order must be preserved")

	var zero alphashape.Object
	assert.Nil(t, zero.Vertices(), "zero Object has no valid kind")
}
