package cif

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// numericValueRE matches a numerical data value of the form #.#(#), where
// the decimal part and the parenthesised standard uncertainty are optional.
var numericValueRE = regexp.MustCompile(`^(-?\d+\.?\d*)(?:\(\d+\))?$`)

// Numeric extracts the numerical value from a raw CIF scalar, stripping the
// standard uncertainty if present: "4.9900(2)" yields 4.99.
func Numeric(value string) (float64, error) {
	m := numericValueRE.FindStringSubmatch(value)
	if m == nil {
		return 0, fmt.Errorf("invalid numerical value %q", value)
	}
	return strconv.ParseFloat(m[1], 64)
}

// NumericColumn converts every cell of a table column with Numeric.
func NumericColumn(cells []string) ([]float64, error) {
	out := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := Numeric(cell)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// SingleBlock selects one block from a parse result. A single-block document
// is returned as is; a multi-block document requires the wanted header.
func SingleBlock(blocks []*DataBlock, header string) (*DataBlock, error) {
	switch {
	case len(blocks) == 0:
		return nil, errors.New("no data blocks in input")
	case len(blocks) == 1:
		return blocks[0], nil
	case header == "":
		return nil, errors.New("data block header required when input has multiple data blocks")
	}
	for _, block := range blocks {
		if block.Header == header {
			return block, nil
		}
	}
	return nil, fmt.Errorf("data block %q not found", header)
}
