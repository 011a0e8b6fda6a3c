// SPDX-License-Identifier: MIT

package table

// Pair is one cell of a paired table: an (axis-0, axis-1) value.
type Pair struct {
	X float64 // axis-0 value
	Y float64 // axis-1 value
}

// Table is an ordered list of column names plus ordered rows of cells.
// Rows are not required to match the column count; malformed input may
// produce rows of any length and consumers decide how to treat them.
type Table[T any] struct {
	Columns []string // header tokens, insertion order preserved
	Rows    [][]T    // one slice per data line
}

// Paired is the parser's output: cells are coordinate pairs.
type Paired = Table[Pair]

// Axis is a single-axis projection of a Paired table.
type Axis = Table[float64]

// Len returns the number of rows. A nil table has zero rows.
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Rows)
}

// HasColumn reports whether a header token equals name exactly.
func (t *Table[T]) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}

	return false
}
