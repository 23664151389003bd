package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSymbol(t *testing.T) {
	f := func(symbol string, number int) {
		t.Helper()
		t.Run(symbol, func(t *testing.T) {
			pg, err := FromSymbol(symbol)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assert.Equal(t, number, pg.Number)
			assert.Equal(t, symbol, pg.Symbol)
		})
	}

	f("1", 1)
	f("-1", 2)
	f("2/m", 5)
	f("mmm", 8)
	f("4/mmm", 15)
	f("-3m", 20)
	f("6/mmm", 27)
	f("m-3m", 32)
}

func TestFromSymbolUnknown(t *testing.T) {
	if _, err := FromSymbol("7"); err == nil {
		t.Error("expected error but got none")
	}
	if _, err := FromSymbol(""); err == nil {
		t.Error("expected error but got none")
	}
}

func TestFromNumber(t *testing.T) {
	pg, err := FromNumber(18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, "32", pg.Symbol)
}

func TestFromNumberOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 33, 100} {
		if _, err := FromNumber(n); err == nil {
			t.Errorf("FromNumber(%d): expected error but got none", n)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for n := 1; n <= 32; n++ {
		pg, err := FromNumber(n)
		if err != nil {
			t.Fatalf("FromNumber(%d): unexpected error: %v", n, err)
		}
		back, err := FromSymbol(pg.Symbol)
		if err != nil {
			t.Fatalf("FromSymbol(%q): unexpected error: %v", pg.Symbol, err)
		}
		assert.Equal(t, n, back.Number)
	}
}
