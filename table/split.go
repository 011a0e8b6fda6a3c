// SPDX-License-Identifier: MIT

package table

// Split projects a paired table onto its two axes. Both results share the
// shape of p: same column names (copied), same row count, same row lengths.
// x holds the X element of every pair, y the Y element. A nil p yields two
// empty tables.
//
// Complexity: O(cells).
func Split(p *Paired) (x, y *Axis) {
	x, y = &Axis{}, &Axis{}
	if p == nil {
		return x, y
	}

	x.Columns = append([]string(nil), p.Columns...)
	y.Columns = append([]string(nil), p.Columns...)
	x.Rows = make([][]float64, len(p.Rows))
	y.Rows = make([][]float64, len(p.Rows))

	var i, j int
	for i = range p.Rows {
		x.Rows[i] = make([]float64, len(p.Rows[i]))
		y.Rows[i] = make([]float64, len(p.Rows[i]))
		for j = range p.Rows[i] {
			x.Rows[i][j] = p.Rows[i][j].X
			y.Rows[i][j] = p.Rows[i][j].Y
		}
	}

	return x, y
}
