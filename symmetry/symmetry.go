// Package symmetry maps crystallographic point groups between their
// Hermann-Mauguin symbols and their serial numbers in the International
// Tables for Crystallography.
package symmetry

import "fmt"

// PointGroup is one of the 32 crystallographic point groups.
type PointGroup struct {
	Symbol string
	Number int
}

// pointGroupNumbers maps the Hermann-Mauguin short symbol of each of the 32
// point groups to its International Tables serial number.
var pointGroupNumbers = map[string]int{
	"1":     1,
	"-1":    2,
	"2":     3,
	"m":     4,
	"2/m":   5,
	"222":   6,
	"mm2":   7,
	"mmm":   8,
	"4":     9,
	"-4":    10,
	"4/m":   11,
	"422":   12,
	"4mm":   13,
	"-42":   14,
	"4/mmm": 15,
	"3":     16,
	"-3":    17,
	"32":    18,
	"3m":    19,
	"-3m":   20,
	"6":     21,
	"-6":    22,
	"6/m":   23,
	"622":   24,
	"6mm":   25,
	"-6m2":  26,
	"6/mmm": 27,
	"23":    28,
	"m-3":   29,
	"432":   30,
	"-43":   31,
	"m-3m":  32,
}

// pointGroupSymbols is the inverse of pointGroupNumbers, built once at init.
var pointGroupSymbols = func() map[int]string {
	m := make(map[int]string, len(pointGroupNumbers))
	for symbol, number := range pointGroupNumbers {
		m[number] = symbol
	}
	return m
}()

// FromSymbol returns the point group with the given Hermann-Mauguin symbol.
func FromSymbol(symbol string) (PointGroup, error) {
	number, ok := pointGroupNumbers[symbol]
	if !ok {
		return PointGroup{}, fmt.Errorf("unknown point group symbol %q", symbol)
	}
	return PointGroup{Symbol: symbol, Number: number}, nil
}

// FromNumber returns the point group with the given International Tables
// serial number.
func FromNumber(number int) (PointGroup, error) {
	symbol, ok := pointGroupSymbols[number]
	if !ok {
		return PointGroup{}, fmt.Errorf("point group number %d out of range 1-32", number)
	}
	return PointGroup{Symbol: symbol, Number: number}, nil
}
