package lattice

import (
	"math"
	"testing"

	cif "github.com/diffractionlab/go-cif"
	"github.com/stretchr/testify/assert"
)

// Calcite, hexagonal axes: a = b = 4.99, c = 17.002, gamma = 120.
var calciteParams = []float64{4.99, 4.99, 17.002, 90, 90, 120}

const calciteCIF = "data_calcite\n" +
	"_cell_length_a 4.9900(2)\n" +
	"_cell_length_b 4.9900(2)\n" +
	"_cell_length_c 17.0020(10)\n" +
	"_cell_angle_alpha 90\n" +
	"_cell_angle_beta 90\n" +
	"_cell_angle_gamma 120\n" +
	"_symmetry_space_group_name_H-M 'R -3 c'\n"

func calciteItems(t *testing.T) *cif.Items {
	t.Helper()
	blocks, err := cif.Parse([]byte(calciteCIF))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return blocks[0].Items
}

func TestMetricTensor(t *testing.T) {
	direct, err := NewDirectLattice(calciteParams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [3][3]float64{
		{24.9001, -12.45005, 0},
		{-12.45005, 24.9001, 0},
		{0, 0, 289.068004},
	}
	got := direct.Metric()
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], got[i][j], 1e-9, "metric[%d][%d]", i, j)
		}
	}

	// Right angles come out as exact zeros.
	assert.Zero(t, got[0][2])
	assert.Zero(t, got[1][2])
}

func TestUnitCellVolume(t *testing.T) {
	direct, err := NewDirectLattice(calciteParams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.InDelta(t, 366.63315390345286, direct.UnitCellVolume(), 1e-9)
}

func TestReciprocal(t *testing.T) {
	direct, err := NewDirectLattice(calciteParams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	recip := direct.Reciprocal()

	assert.InDelta(t, 1.4539473861596934, recip.AStar, 1e-9)
	assert.InDelta(t, 1.4539473861596934, recip.BStar, 1e-9)
	assert.InDelta(t, 2*math.Pi/17.002, recip.CStar, 1e-9)
	assert.InDelta(t, 90, recip.AlphaStar, 1e-9)
	assert.InDelta(t, 90, recip.BetaStar, 1e-9)
	assert.InDelta(t, 60, recip.GammaStar, 1e-9)
}

func TestReciprocalRoundTrip(t *testing.T) {
	direct, err := NewDirectLattice(calciteParams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back := direct.Reciprocal().Direct()

	got := back.Parameters()
	for i, want := range calciteParams {
		assert.InDelta(t, want, got[i], 1e-9, "parameter %d", i)
	}
}

func TestLatticeParameterValidation(t *testing.T) {
	f := func(name string, params []float64) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			if _, err := NewDirectLattice(params); err == nil {
				t.Error("expected error but got none")
			}
			if _, err := NewReciprocalLattice(params); err == nil {
				t.Error("expected error but got none")
			}
		})
	}

	f("too_few", []float64{4.99, 4.99, 17.002})
	f("nil", nil)
	f("zero_length", []float64{0, 4.99, 17.002, 90, 90, 120})
	f("negative_length", []float64{4.99, -4.99, 17.002, 90, 90, 120})
}

func TestDirectLatticeFromItems(t *testing.T) {
	direct, err := DirectLatticeFromItems(calciteItems(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.InDelta(t, 4.99, direct.A, 1e-12)
	assert.InDelta(t, 17.002, direct.C, 1e-12)
	assert.InDelta(t, 120, direct.Gamma, 1e-12)
}

func TestReciprocalLatticeFromItems(t *testing.T) {
	recip, err := ReciprocalLatticeFromItems(calciteItems(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.InDelta(t, 1.4539473861596934, recip.AStar, 1e-9)
	assert.InDelta(t, 60, recip.GammaStar, 1e-9)
}

func TestFromItemsMissingParameter(t *testing.T) {
	blocks, err := cif.Parse([]byte("data_x\n_cell_length_a 4.99\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := DirectLatticeFromItems(blocks[0].Items); err == nil {
		t.Error("expected error but got none")
	}
}

func TestFromItemsBadValue(t *testing.T) {
	input := "data_x\n" +
		"_cell_length_a abc\n" +
		"_cell_length_b 4.99\n" +
		"_cell_length_c 17.002\n" +
		"_cell_angle_alpha 90\n" +
		"_cell_angle_beta 90\n" +
		"_cell_angle_gamma 120\n"
	blocks, err := cif.Parse([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := DirectLatticeFromItems(blocks[0].Items); err == nil {
		t.Error("expected error but got none")
	}
}
