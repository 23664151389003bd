// Package cif parses CIF (Crystallographic Information File) documents into
// validated, ordered data structures.
//
// The package has two independent paths. Validate walks the original line
// stream with a state machine and reports the first syntax violation with
// its exact line number and text. Extract filters comments and blank lines,
// splits the text into data blocks, and runs three extraction passes per
// block (semicolon text fields, inline items, loops) without any error
// reporting of its own. Parse runs both in sequence.
package cif

import (
	"io"
	"os"
)

// DataBlock is a named section of a document holding its extracted data
// items. Blocks appear in parse results in document order; header uniqueness
// is not enforced.
type DataBlock struct {
	Header string
	Items  *Items
}

// Value is a single data item: a scalar string, or a table produced by a
// loop. Exactly one of the two is set.
type Value struct {
	Scalar string
	Table  *Table
}

// IsTable reports whether the value is a loop table.
func (v Value) IsTable() bool {
	return v.Table != nil
}

// Table holds the columns of one loop. Columns preserves the declared-name
// order; every column has the same number of entries, one per value row.
type Table struct {
	Columns []string
	cells   map[string][]string
}

func newTable(columns []string) *Table {
	t := &Table{Columns: columns, cells: make(map[string][]string, len(columns))}
	for _, col := range columns {
		t.cells[col] = nil
	}
	return t
}

// Column returns the entries of the named column in row order, or nil if the
// column was not declared.
func (t *Table) Column(name string) []string {
	return t.cells[name]
}

// Rows returns the number of value rows in the table.
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.cells[t.Columns[0]])
}

// Items is an ordered mapping of data names to values. Names keep the order
// in which their items were extracted.
type Items struct {
	names []string
	m     map[string]Value
}

func newItems() *Items {
	return &Items{m: make(map[string]Value, 16)}
}

// Len returns the number of items.
func (it *Items) Len() int {
	return len(it.names)
}

// Names returns the data names in extraction order. The returned slice is
// shared; callers must not modify it.
func (it *Items) Names() []string {
	return it.names
}

// Get returns the value stored under name.
func (it *Items) Get(name string) (Value, bool) {
	v, ok := it.m[name]
	return v, ok
}

// Scalar returns the scalar stored under name, or false if the name is
// absent or holds a table.
func (it *Items) Scalar(name string) (string, bool) {
	v, ok := it.m[name]
	if !ok || v.IsTable() {
		return "", false
	}
	return v.Scalar, true
}

// Table returns the table stored under name, or false if the name is absent
// or holds a scalar.
func (it *Items) Table(name string) (*Table, bool) {
	v, ok := it.m[name]
	if !ok || !v.IsTable() {
		return nil, false
	}
	return v.Table, true
}

// set stores a value under name. The first write wins: a name already
// present, whether from an earlier pass or earlier in the same pass, is left
// untouched and false is returned.
func (it *Items) set(name string, v Value) bool {
	if _, exists := it.m[name]; exists {
		return false
	}
	it.names = append(it.names, name)
	it.m[name] = v
	return true
}

// Parse validates data and, if it is well formed, extracts its data blocks.
// The error is a *ParseError for a syntax violation or ErrEmptyInput for an
// empty document; the latter is advisory and accompanies an empty block
// slice.
func Parse(data []byte) ([]*DataBlock, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	return Extract(data), nil
}

// Extract parses data without validating it. It assumes the input has
// already passed Validate: fed invalid input it produces undefined (but
// structurally sound) output rather than an error. A document with no block
// heading yields an empty slice.
func Extract(data []byte) []*DataBlock {
	filtered := stripCommentsAndBlanks(string(data))
	raw := splitBlocks(filtered)
	blocks := make([]*DataBlock, 0, len(raw))
	for _, rb := range raw {
		blocks = append(blocks, &DataBlock{
			Header: rb.header,
			Items:  extractItems(rb.body),
		})
	}
	return blocks
}

// ParseFile reads the file at path and parses it.
func ParseFile(path string) ([]*DataBlock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Decoder reads and parses a CIF document from an input stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the remaining input and parses it as one document.
func (d *Decoder) Decode() ([]*DataBlock, error) {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
