// SPDX-License-Identifier: MIT
// Package: filtra/alphashape
//
// geometry.go — circumsphere computations for edges, triangles and
// tetrahedra, and the point-in-sphere test used by both the Delaunay
// predicate and the Gabriel property.
//
// All radii are squared (the alpha-complex filtration works in squared
// circumradii). Circumcenters come from small linear solves in the affine
// hull of the simplex; a singular system means a degenerate simplex.

package alphashape

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// insphereTol is the tolerance of the strict point-in-sphere test,
// relative to 1+r². Points on the sphere (within tolerance) count as
// outside, so cospherical configurations do not reject each other.
const insphereTol = 1e-9

// inSphere reports whether p lies strictly inside the sphere with the
// given center and squared radius.
func inSphere(p, center r3.Vec, r2 float64) bool {
	d := r3.Sub(p, center)

	return r3.Dot(d, d) < r2-insphereTol*(1+r2)
}

// circumEdge returns the center and squared radius of the smallest sphere
// through two points (the diametric sphere).
func circumEdge(a, b r3.Vec) (center r3.Vec, r2 float64) {
	center = r3.Scale(0.5, r3.Add(a, b))
	half := r3.Sub(b, center)

	return center, r3.Dot(half, half)
}

// circumTriangle returns the center and squared radius of the smallest
// sphere through three points: the circumcircle of the triangle, solved in
// the plane spanned by (b-a, c-a). ok is false for collinear points.
//
// System: with x = a + s·u + t·v, u = b-a, v = c-a, equidistance gives
//
//	[ u·u  u·v ] [s]   [ u·u/2 ]
//	[ u·v  v·v ] [t] = [ v·v/2 ]
func circumTriangle(a, b, c r3.Vec) (center r3.Vec, r2 float64, ok bool) {
	u := r3.Sub(b, a)
	v := r3.Sub(c, a)

	m := mat.NewDense(2, 2, []float64{
		r3.Dot(u, u), r3.Dot(u, v),
		r3.Dot(u, v), r3.Dot(v, v),
	})
	rhs := mat.NewVecDense(2, []float64{r3.Dot(u, u) / 2, r3.Dot(v, v) / 2})

	var st mat.VecDense
	if err := st.SolveVec(m, rhs); err != nil {
		return r3.Vec{}, 0, false
	}

	offset := r3.Add(r3.Scale(st.AtVec(0), u), r3.Scale(st.AtVec(1), v))

	return r3.Add(a, offset), r3.Dot(offset, offset), true
}

// circumTetrahedron returns the center and squared radius of the sphere
// through four points. ok is false for coplanar points.
//
// System: with y = x - a and rows u = b-a, v = c-a, w = d-a,
//
//	[ uᵀ ]       [ u·u/2 ]
//	[ vᵀ ] · y = [ v·v/2 ]
//	[ wᵀ ]       [ w·w/2 ]
func circumTetrahedron(a, b, c, d r3.Vec) (center r3.Vec, r2 float64, ok bool) {
	u := r3.Sub(b, a)
	v := r3.Sub(c, a)
	w := r3.Sub(d, a)

	m := mat.NewDense(3, 3, []float64{
		u.X, u.Y, u.Z,
		v.X, v.Y, v.Z,
		w.X, w.Y, w.Z,
	})
	rhs := mat.NewVecDense(3, []float64{
		r3.Dot(u, u) / 2,
		r3.Dot(v, v) / 2,
		r3.Dot(w, w) / 2,
	})

	var y mat.VecDense
	if err := y.SolveVec(m, rhs); err != nil {
		return r3.Vec{}, 0, false
	}

	offset := r3.Vec{X: y.AtVec(0), Y: y.AtVec(1), Z: y.AtVec(2)}

	return r3.Add(a, offset), r3.Dot(offset, offset), true
}
