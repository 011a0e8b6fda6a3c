// SPDX-License-Identifier: MIT

// Package freeform converts loosely formatted constraint listings into the
// tabular text read by table.ParsePaired.
//
// Each non-empty line lists a parameter value followed by a position and,
// optionally, a velocity:
//
//	0 (0, 0) (0.7071, 0.7071)   // start heading north-east
//	1 (-2, 2) (-0.7071, -0.7071)
//
// Parentheses and commas are interchangeable with spaces, and "//" starts a
// comment that runs to the end of the line, even inside a token: nothing
// after the first "//" on a line is parsed, so "0 1 2//3 4" holds three
// numbers, not five. A line holds either 3 numbers
// (t x y) or 5 numbers (t x y vx vy); one 5-number line switches the whole
// listing to velocity mode.
package freeform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrBadToken is returned when a token is not a number.
	ErrBadToken = errors.New("freeform: token is not a number")

	// ErrBadArity is returned when a line holds neither 3 nor 5 numbers.
	ErrBadArity = errors.New("freeform: line must hold 3 or 5 numbers")
)

const (
	commentMark = "//"

	positionArity = 3 // t x y
	velocityArity = 5 // t x y vx vy

	headerPosition = "constraint,coordinate"
	headerVelocity = ",velocity"
)

// separators turns every grouping character into a plain space.
var separators = strings.NewReplacer("(", " ", ")", " ", ",", " ")

// Input is a normalized listing.
type Input struct {
	// Text is the tabular form, ready for table.ParsePaired.
	Text string
	// Constraints is the number of data lines.
	Constraints int
	// Velocity reports whether any line carried a velocity.
	Velocity bool
	// Records holds the parsed numbers of every data line, in order.
	Records [][]float64
}

// Normalize parses a free-form listing and renders it as tabular text.
//
// Implementation:
//   - Stage 1: per line, replace "(", ")" and "," with spaces, cut at the
//     first "//" and parse every remaining field as float64.
//   - Stage 2: drop empty lines; require 3 or 5 numbers per line.
//   - Stage 3: emit the header (with ",velocity" when any line had 5
//     numbers) and one `t,"(x, y)"[,"(vx, vy)"]` row per line.
//
// Errors:
//   - ErrBadToken, ErrBadArity, wrapped with the 1-based line number.
func Normalize(text string) (*Input, error) {
	in := &Input{}

	var (
		n      int
		line   string
		fields []string
		rec    []float64
		v      float64
		err    error
	)
	for n, line = range strings.Split(text, "\n") {
		if i := strings.Index(line, commentMark); i >= 0 {
			line = line[:i]
		}
		fields = strings.Fields(separators.Replace(line))
		if len(fields) == 0 {
			continue
		}

		rec = make([]float64, 0, len(fields))
		for _, f := range fields {
			if v, err = strconv.ParseFloat(f, 64); err != nil {
				return nil, fmt.Errorf("freeform: line %d: %q: %w", n+1, f, ErrBadToken)
			}
			rec = append(rec, v)
		}
		if len(rec) != positionArity && len(rec) != velocityArity {
			return nil, fmt.Errorf("freeform: line %d: got %d numbers: %w", n+1, len(rec), ErrBadArity)
		}
		if len(rec) == velocityArity {
			in.Velocity = true
		}
		in.Records = append(in.Records, rec)
	}

	in.Constraints = len(in.Records)
	in.Text = render(in.Records, in.Velocity)

	return in, nil
}

// render writes the tabular form of records.
func render(records [][]float64, velocity bool) string {
	var b strings.Builder
	b.WriteString(headerPosition)
	if velocity {
		b.WriteString(headerVelocity)
	}
	for _, rec := range records {
		b.WriteByte('\n')
		b.WriteString(formatNumber(rec[0]))
		writePair(&b, rec[1], rec[2])
		if len(rec) == velocityArity {
			writePair(&b, rec[3], rec[4])
		}
	}

	return b.String()
}

// writePair appends `,"(a, b)"`.
func writePair(b *strings.Builder, a, c float64) {
	b.WriteString(`,"(`)
	b.WriteString(formatNumber(a))
	b.WriteString(", ")
	b.WriteString(formatNumber(c))
	b.WriteString(`)"`)
}

// formatNumber renders the shortest decimal that round-trips.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
