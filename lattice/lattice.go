// Package lattice provides direct and reciprocal space lattice calculations
// over data items parsed by package cif. Naming follows the International
// Tables for Crystallography: lattice parameters are (a, b, c, alpha, beta,
// gamma) with angles in degrees, and the reciprocal lattice uses the 2*pi
// (physics) convention.
package lattice

import (
	"fmt"
	"math"

	"github.com/diffractionlab/go-cif"
)

// Parameters holds the six lattice parameters (a, b, c, alpha, beta, gamma)
// with angles in degrees.
type Parameters [6]float64

// cifNames maps lattice parameter keys to the CIF data names that carry
// them.
var cifNames = map[string]string{
	"a":           "cell_length_a",
	"b":           "cell_length_b",
	"c":           "cell_length_c",
	"alpha":       "cell_angle_alpha",
	"beta":        "cell_angle_beta",
	"gamma":       "cell_angle_gamma",
	"space_group": "symmetry_space_group_name_H-M",
}

var parameterKeys = [6]string{"a", "b", "c", "alpha", "beta", "gamma"}

// toRadians converts the angle parameters from degrees to radians.
func toRadians(p Parameters) Parameters {
	return Parameters{p[0], p[1], p[2],
		p[3] * math.Pi / 180, p[4] * math.Pi / 180, p[5] * math.Pi / 180}
}

// toDegrees converts the angle parameters from radians to degrees.
func toDegrees(p Parameters) Parameters {
	return Parameters{p[0], p[1], p[2],
		p[3] * 180 / math.Pi, p[4] * 180 / math.Pi, p[5] * 180 / math.Pi}
}

// round10 rounds to 10 decimal places, absorbing floating-point noise in
// tensor entries that are exactly zero for right angles.
func round10(x float64) float64 {
	return math.Round(x*1e10) / 1e10
}

// MetricTensor computes the metric tensor of a lattice with the given
// parameters (angles in degrees).
func MetricTensor(p Parameters) [3][3]float64 {
	q := toRadians(p)
	a, b, c, al, be, ga := q[0], q[1], q[2], q[3], q[4], q[5]
	m := [3][3]float64{
		{a * a, a * b * math.Cos(ga), a * c * math.Cos(be)},
		{a * b * math.Cos(ga), b * b, b * c * math.Cos(al)},
		{a * c * math.Cos(be), b * c * math.Cos(al), c * c},
	}
	for i := range m {
		for j := range m[i] {
			m[i][j] = round10(m[i][j])
		}
	}
	return m
}

// Reciprocalise transforms lattice parameters to those of the reciprocally
// related lattice, in either direction.
func Reciprocalise(p Parameters) Parameters {
	q := toRadians(p)
	a, b, c, al, be, ga := q[0], q[1], q[2], q[3], q[4], q[5]
	volume := math.Sqrt(det3(MetricTensor(p)))

	sin, cos, acos := math.Sin, math.Cos, math.Acos
	recip := Parameters{
		2 * math.Pi * b * c * sin(al) / volume,
		2 * math.Pi * a * c * sin(be) / volume,
		2 * math.Pi * a * b * sin(ga) / volume,
		acos((cos(be)*cos(ga) - cos(al)) / (sin(be) * sin(ga))),
		acos((cos(al)*cos(ga) - cos(be)) / (sin(al) * sin(ga))),
		acos((cos(al)*cos(be) - cos(ga)) / (sin(al) * sin(be))),
	}
	return toDegrees(recip)
}

// checkParameters validates a raw parameter slice.
func checkParameters(params []float64) (Parameters, error) {
	if len(params) < 6 {
		return Parameters{}, fmt.Errorf("missing lattice parameter: got %d of 6", len(params))
	}
	var p Parameters
	copy(p[:], params)
	for i, v := range p {
		if i < 3 && v <= 0 {
			return Parameters{}, fmt.Errorf("invalid lattice parameter %s: %v", parameterKeys[i], v)
		}
	}
	return p, nil
}

// DirectLattice represents a direct space lattice.
type DirectLattice struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64 // degrees
}

// NewDirectLattice builds a direct lattice from parameters in the order
// (a, b, c, alpha, beta, gamma), angles in degrees.
func NewDirectLattice(params []float64) (*DirectLattice, error) {
	p, err := checkParameters(params)
	if err != nil {
		return nil, err
	}
	return &DirectLattice{A: p[0], B: p[1], C: p[2], Alpha: p[3], Beta: p[4], Gamma: p[5]}, nil
}

// DirectLatticeFromItems builds a direct lattice from the data items of one
// parsed CIF block.
func DirectLatticeFromItems(items *cif.Items) (*DirectLattice, error) {
	params, err := numericParameters(items)
	if err != nil {
		return nil, err
	}
	return NewDirectLattice(params)
}

// numericParameters pulls the six lattice parameters out of a block's data
// items, converting each from its raw CIF form.
func numericParameters(items *cif.Items) ([]float64, error) {
	params := make([]float64, 0, 6)
	for _, key := range parameterKeys {
		name := cifNames[key]
		raw, ok := items.Scalar(name)
		if !ok {
			return nil, fmt.Errorf("parameter %q missing from input CIF", name)
		}
		v, err := cif.Numeric(raw)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		params = append(params, v)
	}
	return params, nil
}

// Parameters returns the lattice parameters with angles in degrees.
func (l *DirectLattice) Parameters() Parameters {
	return Parameters{l.A, l.B, l.C, l.Alpha, l.Beta, l.Gamma}
}

// Metric returns the metric tensor of the direct basis.
func (l *DirectLattice) Metric() [3][3]float64 {
	return MetricTensor(l.Parameters())
}

// UnitCellVolume returns the volume of the unit cell.
func (l *DirectLattice) UnitCellVolume() float64 {
	return math.Sqrt(det3(l.Metric()))
}

// Reciprocal returns the reciprocally related lattice.
func (l *DirectLattice) Reciprocal() *ReciprocalLattice {
	p := Reciprocalise(l.Parameters())
	return &ReciprocalLattice{
		AStar: p[0], BStar: p[1], CStar: p[2],
		AlphaStar: p[3], BetaStar: p[4], GammaStar: p[5],
	}
}

// Vector returns a direct lattice vector with components (u, v, w) defined
// on this lattice.
func (l *DirectLattice) Vector(u, v, w float64) DirectLatticeVector {
	return DirectLatticeVector{UVW: [3]float64{u, v, w}, Lattice: l}
}

// ReciprocalLattice represents a reciprocal space lattice in the 2*pi
// convention.
type ReciprocalLattice struct {
	AStar, BStar, CStar            float64
	AlphaStar, BetaStar, GammaStar float64 // degrees
}

// NewReciprocalLattice builds a reciprocal lattice from parameters in the
// order (a*, b*, c*, alpha*, beta*, gamma*), angles in degrees.
func NewReciprocalLattice(params []float64) (*ReciprocalLattice, error) {
	p, err := checkParameters(params)
	if err != nil {
		return nil, err
	}
	return &ReciprocalLattice{
		AStar: p[0], BStar: p[1], CStar: p[2],
		AlphaStar: p[3], BetaStar: p[4], GammaStar: p[5],
	}, nil
}

// ReciprocalLatticeFromItems builds the reciprocal lattice of the direct
// lattice described by the data items of one parsed CIF block.
func ReciprocalLatticeFromItems(items *cif.Items) (*ReciprocalLattice, error) {
	direct, err := DirectLatticeFromItems(items)
	if err != nil {
		return nil, err
	}
	return direct.Reciprocal(), nil
}

// Parameters returns the reciprocal lattice parameters with angles in
// degrees.
func (l *ReciprocalLattice) Parameters() Parameters {
	return Parameters{l.AStar, l.BStar, l.CStar, l.AlphaStar, l.BetaStar, l.GammaStar}
}

// Metric returns the metric tensor of the reciprocal basis.
func (l *ReciprocalLattice) Metric() [3][3]float64 {
	return MetricTensor(l.Parameters())
}

// UnitCellVolume returns the volume of the reciprocal unit cell.
func (l *ReciprocalLattice) UnitCellVolume() float64 {
	return math.Sqrt(det3(l.Metric()))
}

// Direct returns the corresponding direct lattice.
func (l *ReciprocalLattice) Direct() *DirectLattice {
	p := Reciprocalise(l.Parameters())
	return &DirectLattice{A: p[0], B: p[1], C: p[2], Alpha: p[3], Beta: p[4], Gamma: p[5]}
}

// Vector returns a reciprocal lattice vector with indices (h, k, l) defined
// on this lattice.
func (l *ReciprocalLattice) Vector(h, k, lIdx float64) ReciprocalLatticeVector {
	return ReciprocalLatticeVector{HKL: [3]float64{h, k, lIdx}, Lattice: l}
}
