// Package orderid derives sequential human-readable order identifiers
// of the form ORD001, ORD002, ...
package orderid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const prefix = "ORD"

// ErrMalformed marks a stored order identifier that does not match the
// ORD+digits shape. This is a data-integrity fault, not caller input.
var ErrMalformed = errors.New("malformed order id")

// Next returns the identifier following lastID. An empty lastID starts
// the sequence at ORD001. The counter is zero-padded to three digits
// and simply widens past ORD999.
func Next(lastID string) (string, error) {
	if lastID == "" {
		return fmt.Sprintf("%s%03d", prefix, 1), nil
	}

	digits, ok := strings.CutPrefix(lastID, prefix)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMalformed, lastID)
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return "", fmt.Errorf("%w: %q", ErrMalformed, lastID)
	}

	return fmt.Sprintf("%s%03d", prefix, n+1), nil
}
