// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedNumber is returned when a cell token is not a float.
	ErrMalformedNumber = errors.New("table: malformed number")

	// ErrPairArity is returned when a tuple cell does not hold exactly two numbers.
	ErrPairArity = errors.New("table: value pair must hold exactly two numbers")

	// ErrNonFinite is returned for NaN or ±Inf cell values.
	ErrNonFinite = errors.New("table: NaN or Inf value")
)

// cellErrorf attaches 1-based line and cell positions to a sentinel.
func cellErrorf(line, cell int, token string, err error) error {
	return fmt.Errorf("table: line %d, cell %d: %q: %w", line, cell, token, err)
}
