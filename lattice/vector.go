package lattice

import (
	"errors"
	"fmt"
	"math"
)

// errLatticeMismatch reports an operation between vectors defined on
// unrelated lattices.
var errLatticeMismatch = errors.New("vectors are defined on different lattices")

// det3 returns the determinant of a 3x3 matrix.
func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// inv3 returns the inverse of a 3x3 matrix.
func inv3(m [3][3]float64) [3][3]float64 {
	d := det3(m)
	return [3][3]float64{
		{(m[1][1]*m[2][2] - m[1][2]*m[2][1]) / d,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) / d,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) / d},
		{(m[1][2]*m[2][0] - m[1][0]*m[2][2]) / d,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) / d,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) / d},
		{(m[1][0]*m[2][1] - m[1][1]*m[2][0]) / d,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) / d,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) / d},
	}
}

// mulVec returns m*v.
func mulVec(m [3][3]float64, v [3]float64) [3]float64 {
	var out [3]float64
	for i := range m {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// dot3 returns the component-wise dot product of two triples.
func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// allClose reports whether two matrices agree element-wise within the given
// relative tolerance.
func allClose(a, b [3][3]float64, rtol float64) bool {
	for i := range a {
		for j := range a[i] {
			if math.Abs(a[i][j]-b[i][j]) > rtol*math.Abs(b[i][j]) {
				return false
			}
		}
	}
	return true
}

// reciprocallyRelated reports whether direct and reciprocal metric tensors
// describe the same crystal, i.e. G = 4*pi^2 * inverse(G*). The loose
// tolerance absorbs rounding in parameters read from a file.
func reciprocallyRelated(direct, reciprocal [3][3]float64) bool {
	inv := inv3(reciprocal)
	four := 4 * math.Pi * math.Pi
	for i := range inv {
		for j := range inv[i] {
			inv[i][j] *= four
		}
	}
	return allClose(direct, inv, 1e-2)
}

// DirectLatticeVector is a vector with components (u, v, w) on the basis of
// a direct lattice.
type DirectLatticeVector struct {
	UVW     [3]float64
	Lattice *DirectLattice
}

// Norm returns the length of the vector.
func (v DirectLatticeVector) Norm() float64 {
	g := v.Lattice.Metric()
	return math.Sqrt(dot3(v.UVW, mulVec(g, v.UVW)))
}

// Add returns the sum of two vectors on the same lattice.
func (v DirectLatticeVector) Add(w DirectLatticeVector) (DirectLatticeVector, error) {
	if *v.Lattice != *w.Lattice {
		return DirectLatticeVector{}, errLatticeMismatch
	}
	return DirectLatticeVector{
		UVW:     [3]float64{v.UVW[0] + w.UVW[0], v.UVW[1] + w.UVW[1], v.UVW[2] + w.UVW[2]},
		Lattice: v.Lattice,
	}, nil
}

// Sub returns the difference of two vectors on the same lattice.
func (v DirectLatticeVector) Sub(w DirectLatticeVector) (DirectLatticeVector, error) {
	if *v.Lattice != *w.Lattice {
		return DirectLatticeVector{}, errLatticeMismatch
	}
	return DirectLatticeVector{
		UVW:     [3]float64{v.UVW[0] - w.UVW[0], v.UVW[1] - w.UVW[1], v.UVW[2] - w.UVW[2]},
		Lattice: v.Lattice,
	}, nil
}

// Inner returns the inner product of two vectors on the same lattice.
func (v DirectLatticeVector) Inner(w DirectLatticeVector) (float64, error) {
	if *v.Lattice != *w.Lattice {
		return 0, errLatticeMismatch
	}
	g := v.Lattice.Metric()
	return dot3(v.UVW, mulVec(g, w.UVW)), nil
}

// Angle returns the angle between two vectors on the same lattice, in
// degrees.
func (v DirectLatticeVector) Angle(w DirectLatticeVector) (float64, error) {
	inner, err := v.Inner(w)
	if err != nil {
		return 0, err
	}
	return math.Acos(inner/(v.Norm()*w.Norm())) * 180 / math.Pi, nil
}

// InnerReciprocal returns the inner product of a direct lattice vector with
// a reciprocal lattice vector. The two lattices must be reciprocally related,
// in which case the product reduces to 2*pi*(u*h + v*k + w*l).
func (v DirectLatticeVector) InnerReciprocal(w ReciprocalLatticeVector) (float64, error) {
	if !reciprocallyRelated(v.Lattice.Metric(), w.Lattice.Metric()) {
		return 0, fmt.Errorf("lattices of %v and %v are not reciprocally related", v.UVW, w.HKL)
	}
	return 2 * math.Pi * dot3(v.UVW, w.HKL), nil
}

// ReciprocalLatticeVector is a vector with indices (h, k, l) on the basis of
// a reciprocal lattice.
type ReciprocalLatticeVector struct {
	HKL     [3]float64
	Lattice *ReciprocalLattice
}

// Norm returns the length of the vector.
func (v ReciprocalLatticeVector) Norm() float64 {
	g := v.Lattice.Metric()
	return math.Sqrt(dot3(v.HKL, mulVec(g, v.HKL)))
}

// Add returns the sum of two vectors on the same lattice.
func (v ReciprocalLatticeVector) Add(w ReciprocalLatticeVector) (ReciprocalLatticeVector, error) {
	if *v.Lattice != *w.Lattice {
		return ReciprocalLatticeVector{}, errLatticeMismatch
	}
	return ReciprocalLatticeVector{
		HKL:     [3]float64{v.HKL[0] + w.HKL[0], v.HKL[1] + w.HKL[1], v.HKL[2] + w.HKL[2]},
		Lattice: v.Lattice,
	}, nil
}

// Sub returns the difference of two vectors on the same lattice.
func (v ReciprocalLatticeVector) Sub(w ReciprocalLatticeVector) (ReciprocalLatticeVector, error) {
	if *v.Lattice != *w.Lattice {
		return ReciprocalLatticeVector{}, errLatticeMismatch
	}
	return ReciprocalLatticeVector{
		HKL:     [3]float64{v.HKL[0] - w.HKL[0], v.HKL[1] - w.HKL[1], v.HKL[2] - w.HKL[2]},
		Lattice: v.Lattice,
	}, nil
}

// Inner returns the inner product of two vectors on the same lattice.
func (v ReciprocalLatticeVector) Inner(w ReciprocalLatticeVector) (float64, error) {
	if *v.Lattice != *w.Lattice {
		return 0, errLatticeMismatch
	}
	g := v.Lattice.Metric()
	return dot3(v.HKL, mulVec(g, w.HKL)), nil
}

// Angle returns the angle between two vectors on the same lattice, in
// degrees.
func (v ReciprocalLatticeVector) Angle(w ReciprocalLatticeVector) (float64, error) {
	inner, err := v.Inner(w)
	if err != nil {
		return 0, err
	}
	return math.Acos(inner/(v.Norm()*w.Norm())) * 180 / math.Pi, nil
}

// InnerDirect returns the inner product of a reciprocal lattice vector with
// a direct lattice vector.
func (v ReciprocalLatticeVector) InnerDirect(w DirectLatticeVector) (float64, error) {
	return w.InnerReciprocal(v)
}
