// Package table parses the semi-structured trajectory text into paired
// tables and projects them onto single axes.
//
// Input is CSV-like. A header line of comma-separated column names is
// followed by data lines made of a bare leading number and zero or more
// quoted, parenthesized coordinate pairs:
//
//	t,"coordinate"
//	0,"(0,0)"
//	1,"(1,1)"
//
// ParsePaired reads this into a Paired table. The leading scalar is
// duplicated into both halves of its Pair, so every cell has the same shape.
// Split then yields one Axis table per coordinate. Parsing is all-or-nothing:
// the first malformed token aborts with an error matching one of the
// package sentinels (ErrMalformedNumber, ErrPairArity, ErrNonFinite).
package table
