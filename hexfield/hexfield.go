// Package hexfield implements the functionality for encoding and decoding a sequence of numbers
// to and from a string of fixed width hexadecimal fields
package hexfield

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Width is the number of hex digits of every field
	Width = 5

	// Limit is the exclusive upper bound of the values which fit in a single field
	Limit = 1 << (4 * Width)
)

// ErrMalformed is returned when the input is not a sequence of fixed width hex fields
var ErrMalformed = errors.New("malformed hex fields")

// Fits returns true if the value can be encoded into a single field
func Fits(v uint32) bool {
	return v < Limit
}

// Encode encodes the values into zero padded upper case hex fields with no separator.
// The values must fit into a single field.
func Encode(values []uint32) string {
	var sb strings.Builder
	sb.Grow(len(values) * Width)
	for _, v := range values {
		fmt.Fprintf(&sb, "%05X", v)
	}
	return sb.String()
}

// Decode decodes a string of hex fields.
// Both upper and lower case digits are accepted.
func Decode(in string) ([]uint32, error) {
	if len(in)%Width != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrMalformed, len(in), Width)
	}

	values := make([]uint32, 0, len(in)/Width)
	for offset := 0; offset < len(in); offset += Width {
		field := in[offset : offset+Width]
		v, err := strconv.ParseUint(field, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid field '%s' at offset %d", ErrMalformed, field, offset)
		}
		values = append(values, uint32(v))
	}
	return values, nil
}
