package cif

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumeric(t *testing.T) {
	f := func(input string, want float64) {
		t.Helper()
		got, err := Numeric(input)
		if err != nil {
			t.Errorf("Numeric(%q): unexpected error: %v", input, err)
			return
		}
		assert.InDelta(t, want, got, 1e-12, "Numeric(%q)", input)
	}

	f("4.99", 4.99)
	f("4.9900(2)", 4.99)
	f("17.0020(10)", 17.002)
	f("90", 90)
	f("120", 120)
	f("-0.25", -0.25)
	f("-3(1)", -3)
	f("0", 0)
}

func TestNumericRejects(t *testing.T) {
	for _, input := range []string{"", "abc", "'4.99'", "4.99 ", "4.99()", "1.2.3", "(2)", "--1"} {
		if _, err := Numeric(input); err == nil {
			t.Errorf("Numeric(%q): expected error but got none", input)
		}
	}
}

func TestNumericErrorMessage(t *testing.T) {
	_, err := Numeric("abc")
	assert.EqualError(t, err, `invalid numerical value "abc"`)
}

func TestNumericColumn(t *testing.T) {
	got, err := NumericColumn([]string{"0", "0.25", "0.2567(2)"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.2567}, got, 1e-12)

	if _, err := NumericColumn([]string{"0", "Ca1"}); err == nil {
		t.Error("expected error for non-numeric cell")
	}
}

func TestSingleBlock(t *testing.T) {
	one := &DataBlock{Header: "data_one", Items: newItems()}
	two := &DataBlock{Header: "data_two", Items: newItems()}

	t.Run("no_blocks", func(t *testing.T) {
		_, err := SingleBlock(nil, "")
		assert.EqualError(t, err, "no data blocks in input")
	})

	t.Run("single_block_any_header", func(t *testing.T) {
		got, err := SingleBlock([]*DataBlock{one}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.Same(t, one, got)
	})

	t.Run("multi_block_needs_header", func(t *testing.T) {
		_, err := SingleBlock([]*DataBlock{one, two}, "")
		assert.EqualError(t, err, "data block header required when input has multiple data blocks")
	})

	t.Run("multi_block_by_header", func(t *testing.T) {
		got, err := SingleBlock([]*DataBlock{one, two}, "data_two")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.Same(t, two, got)
	})

	t.Run("header_not_found", func(t *testing.T) {
		_, err := SingleBlock([]*DataBlock{one, two}, "data_three")
		assert.EqualError(t, err, `data block "data_three" not found`)
	})
}
