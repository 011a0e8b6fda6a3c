// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Tokenizer literals.
const (
	delim       = ","
	emptySlot   = ",,"
	emptyFilled = ", ,"
	cellSplit   = ",\"" // a delimiter immediately followed by a quote opens a tuple cell
	quote       = "\""
)

// tupleCleaner turns "(1.5, -2)" into " 1.5  -2 " so it splits on whitespace.
var tupleCleaner = strings.NewReplacer("(", "", ")", "", ",", " ")

// ParsePaired parses tabular text into a Paired table.
//
// Format:
//
//	constraint,coordinate,velocity
//	0,"(0, 0)","(0.7, 0.7)"
//	1,"(-2,2)","(-0.7, -0.7)"
//
// Implementation:
//   - Stage 1: the first line is split on "," into Columns (no coercion, no trimming).
//   - Stage 2: each non-blank data line has ",," widened to ", ," so empty
//     slots survive, then is split on `,"`. Quotes are removed from every token.
//   - Stage 3: token 0 is a bare scalar stored as Pair{v, v}; every other
//     token is a tuple of exactly two numbers.
//
// Errors:
//   - ErrMalformedNumber, ErrPairArity, ErrNonFinite, wrapped with line and cell.
//     Any error aborts the parse; no partial table is returned.
//
// Complexity:
//   - Time O(len(text)), Space O(len(text)).
func ParsePaired(text string) (*Paired, error) {
	out := &Paired{}
	if text == "" {
		return out, nil
	}

	lines := strings.Split(text, "\n")
	out.Columns = strings.Split(strings.TrimSuffix(lines[0], "\r"), delim)
	out.Rows = make([][]Pair, 0, len(lines)-1)

	var (
		i    int
		line string
		row  []Pair
		err  error
	)
	for i = 1; i < len(lines); i++ {
		line = strings.TrimSuffix(lines[i], "\r")
		if strings.TrimSpace(line) == "" {
			continue // blank lines (including the one after a final newline) carry no row
		}
		if row, err = parseRow(line, i+1); err != nil {
			return nil, err
		}
		out.Rows = append(out.Rows, row)
	}

	return out, nil
}

// parseRow tokenizes one data line; lineNo is 1-based for messages.
func parseRow(line string, lineNo int) ([]Pair, error) {
	tokens := strings.Split(strings.ReplaceAll(line, emptySlot, emptyFilled), cellSplit)
	row := make([]Pair, 0, len(tokens))

	var (
		k      int
		tok    string
		fields []string
		x, y   float64
		err    error
	)
	for k, tok = range tokens {
		tok = strings.ReplaceAll(tok, quote, "")
		if k == 0 {
			if x, err = parseNumber(strings.TrimSpace(tok)); err != nil {
				return nil, cellErrorf(lineNo, k+1, tok, err)
			}
			row = append(row, Pair{X: x, Y: x}) // single-valued column, duplicated to keep the cell shape
			continue
		}

		fields = strings.Fields(tupleCleaner.Replace(tok))
		if len(fields) != 2 {
			return nil, cellErrorf(lineNo, k+1, tok, ErrPairArity)
		}
		if x, err = parseNumber(fields[0]); err != nil {
			return nil, cellErrorf(lineNo, k+1, tok, err)
		}
		if y, err = parseNumber(fields[1]); err != nil {
			return nil, cellErrorf(lineNo, k+1, tok, err)
		}
		row = append(row, Pair{X: x, Y: y})
	}

	return row, nil
}

// parseNumber parses a finite float64.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrNonFinite
		}
		return 0, ErrMalformedNumber
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}

	return v, nil
}
